package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// APIError is a non-2xx answer from the E-WIZZ API. Detail carries the
// backend's human-readable message when it supplied one.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// Client talks to the E-WIZZ REST API. All paths live under /api.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+"/api"+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(respBody, &detail) == nil {
			apiErr.Detail = detail.Detail
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

// Init seeds demo data. Idempotent on the backend side; callers
// fire-and-forget it at startup.
func (c *Client) Init(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/init", nil, nil)
}

func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var res LoginResult
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/register", map[string]string{
		"username": username,
		"password": password,
	}, nil)
}

func (c *Client) Dashboard(ctx context.Context, userID, period string) (*DashboardSnapshot, error) {
	var snap DashboardSnapshot
	path := fmt.Sprintf("/dashboard/%s?period=%s", url.PathEscape(userID), url.QueryEscape(period))
	if err := c.do(ctx, http.MethodGet, path, nil, &snap); err != nil {
		return nil, err
	}
	snap.Period = period
	return &snap, nil
}

func (c *Client) Appliances(ctx context.Context, userID string) ([]Appliance, error) {
	var list []Appliance
	if err := c.do(ctx, http.MethodGet, "/appliances/"+url.PathEscape(userID), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) AddAppliance(ctx context.Context, userID string, in ApplianceInput) error {
	return c.do(ctx, http.MethodPost, "/appliances/"+url.PathEscape(userID), in, nil)
}

// ControlAppliance sets an appliance to ON or OFF. The caller is expected to
// send the opposite of the currently shown status, never an arbitrary value.
func (c *Client) ControlAppliance(ctx context.Context, applianceID, status string) error {
	return c.do(ctx, http.MethodPut, "/appliances/"+url.PathEscape(applianceID)+"/control",
		map[string]string{"status": status}, nil)
}

func (c *Client) DeleteAppliance(ctx context.Context, applianceID string) error {
	return c.do(ctx, http.MethodDelete, "/appliances/"+url.PathEscape(applianceID), nil, nil)
}

func (c *Client) Bill(ctx context.Context, userID string) (*BillSnapshot, error) {
	var bill BillSnapshot
	if err := c.do(ctx, http.MethodGet, "/bill/"+url.PathEscape(userID), nil, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

func (c *Client) Predict(ctx context.Context, userID string) (*Prediction, error) {
	var pred Prediction
	if err := c.do(ctx, http.MethodGet, "/predict/"+url.PathEscape(userID), nil, &pred); err != nil {
		return nil, err
	}
	return &pred, nil
}

func (c *Client) EcoMode(ctx context.Context, userID, tier string) (*EcoRecommendationSet, error) {
	var set EcoRecommendationSet
	err := c.do(ctx, http.MethodPost, "/eco-mode/"+url.PathEscape(userID),
		map[string]string{"tier": tier}, &set)
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (c *Client) Chat(ctx context.Context, message, sessionID string) (string, error) {
	var res struct {
		Response string `json:"response"`
	}
	err := c.do(ctx, http.MethodPost, "/chatbot", map[string]string{
		"message":    message,
		"session_id": sessionID,
	}, &res)
	if err != nil {
		return "", err
	}
	return res.Response, nil
}

func (c *Client) AdminUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) AdminDeleteUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(userID), nil, nil)
}

func (c *Client) AdminUsageEntry(ctx context.Context, entry UsageEntry) error {
	return c.do(ctx, http.MethodPost, "/admin/usage-entry", entry, nil)
}
