package backend

import "time"

// User is an account record as the API returns it from /admin/users.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// LoginResult is the flattened record /auth/login returns.
type LoginResult struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Appliance struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Name        string  `json:"name"`
	PowerRating float64 `json:"power_rating"`
	Location    string  `json:"location"`
	Status      string  `json:"status"`
}

const (
	StatusOn  = "ON"
	StatusOff = "OFF"
)

type ApplianceInput struct {
	Name        string  `json:"name"`
	PowerRating float64 `json:"power_rating"`
	Location    string  `json:"location"`
}

// DashboardSnapshot is the aggregate for one (user, period) pair.
// Period is not part of the wire payload; the client stamps it from the request.
type DashboardSnapshot struct {
	Period             string             `json:"-"`
	TotalConsumption   float64            `json:"total_consumption"`
	TotalCost          float64            `json:"total_cost"`
	AvgDailyUsage      float64            `json:"avg_daily_usage"`
	LiveUsage          float64            `json:"live_usage"`
	HourlyData         map[string]float64 `json:"hourly_data"`
	ApplianceBreakdown map[string]float64 `json:"appliance_breakdown"`
}

var Periods = []string{"yesterday", "today", "week", "month", "year"}

func ValidPeriod(p string) bool {
	for _, v := range Periods {
		if v == p {
			return true
		}
	}
	return false
}

type BillSnapshot struct {
	Month          string  `json:"month"`
	FixedCharge    float64 `json:"fixed_charge"`
	PerUnitCharge  float64 `json:"per_unit_charge"`
	TotalUnits     float64 `json:"total_units"`
	VariableCharge float64 `json:"variable_charge"`
	TotalBill      float64 `json:"total_bill"`
}

type Prediction struct {
	PredictedMonthlyCost float64 `json:"predicted_monthly_cost"`
	PredictedUnits       float64 `json:"predicted_units"`
	AverageDailyUnits    float64 `json:"average_daily_units"`
}

type EcoRecommendationSet struct {
	Tier            string   `json:"tier"`
	Recommendations []string `json:"recommendations"`
}

var EcoTiers = []string{"Standard", "Super", "Ultra"}

func ValidTier(t string) bool {
	for _, v := range EcoTiers {
		if v == t {
			return true
		}
	}
	return false
}

type UsageEntry struct {
	UserID         string  `json:"user_id"`
	Date           string  `json:"date"`
	ConsumptionKWh float64 `json:"consumption_kwh"`
}
