package web

import (
	"ewizz-console/internal/backend"
	"ewizz-console/internal/handlers"
	"ewizz-console/internal/session"
	"ewizz-console/internal/view"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	store *session.Store,
	authHandler *handlers.AuthHandler,
	dashHandler *handlers.DashboardHandler,
	applianceHandler *handlers.ApplianceHandler,
	chatHandler *handlers.ChatHandler,
	adminHandler *handlers.AdminHandler,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(), WithSession(store))
	router.SetHTMLTemplate(view.Templates())

	router.GET("/", handlers.HomeRedirect)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)
	router.GET("/register", authHandler.ShowRegister)
	router.POST("/register", authHandler.Register)

	// user dashboard and its panels
	dash := router.Group("/dashboard", RequireRole(backend.RoleUser))
	{
		dash.GET("", dashHandler.Show)
		dash.POST("/appliances", applianceHandler.Add)
		dash.POST("/appliances/:id/toggle", applianceHandler.Toggle)
		dash.POST("/appliances/:id/delete", applianceHandler.Delete)
		dash.POST("/eco", dashHandler.SelectEco)
		dash.POST("/chat", chatHandler.Send)
	}

	// admin shell
	admin := router.Group("/admin", RequireRole(backend.RoleAdmin))
	{
		admin.GET("", adminHandler.Show)
		admin.POST("/users/:id/delete", adminHandler.DeleteUser)
		admin.POST("/usage-entry", adminHandler.UsageEntry)
	}

	return router
}
