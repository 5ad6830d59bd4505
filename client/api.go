// Package client is the Go counterpart of the web dashboard's data layer: a
// thin HTTP API wrapper plus a per-date cache that refetches after every
// mutation instead of patching locally.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// FoodItem is the wire shape of an item inside a log.
type FoodItem struct {
	ID       uint    `json:"ID"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Quantity float64 `json:"quantity"`
}

// FoodLog is the wire shape of one day's log document.
type FoodLog struct {
	ID        uint       `json:"ID"`
	UserID    uint       `json:"userId"`
	Date      string     `json:"date"`
	FoodItems []FoodItem `json:"foodItems"`
}

// FoodItemInput is what AddLog submits per item.
type FoodItemInput struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Quantity float64 `json:"quantity"`
}

// FoodItemUpdate carries optional PATCH fields; zero values are ignored by
// the server.
type FoodItemUpdate struct {
	Name     string  `json:"name,omitempty"`
	Calories float64 `json:"calories,omitempty"`
	Quantity float64 `json:"quantity,omitempty"`
}

// API talks to the calorie tracker server with a bearer token.
type API struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewAPI(baseURL string) *API {
	return &API{BaseURL: baseURL, HTTPClient: http.DefaultClient}
}

// do sends a JSON request and returns status and raw body. The bearer token
// is attached when set.
func (a *API) do(method, path string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, a.BaseURL+path, body)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.Token)
	}

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		// a truncated body is a transport failure, not bad JSON
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, raw, nil
}

// apiError extracts the server's {"error": ...} message when there is one.
func apiError(status int, raw []byte) error {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &e); err == nil && e.Error != "" {
		return fmt.Errorf("server returned %d: %s", status, e.Error)
	}
	return fmt.Errorf("server returned %d", status)
}

func (a *API) Register(name, email, password string) error {
	status, raw, err := a.do(http.MethodPost, "/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return apiError(status, raw)
	}
	return nil
}

// Login fetches a token and keeps it on the client for later calls.
func (a *API) Login(email, password string) (string, error) {
	status, raw, err := a.do(http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", apiError(status, raw)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", err
	}
	a.Token = out.Token
	return out.Token, nil
}

func (a *API) AddLog(date string, items []FoodItemInput) error {
	status, raw, err := a.do(http.MethodPost, "/logs", map[string]any{
		"date":      date,
		"foodItems": items,
	})
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return apiError(status, raw)
	}
	return nil
}

func (a *API) GetLogs(date string) ([]FoodLog, error) {
	status, raw, err := a.do(http.MethodGet, "/logs/"+url.PathEscape(date), nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apiError(status, raw)
	}
	var logs []FoodLog
	if err := json.Unmarshal(raw, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (a *API) UpdateFoodItem(logID, foodItemID uint, update FoodItemUpdate) (*FoodLog, error) {
	status, raw, err := a.do(http.MethodPatch, fmt.Sprintf("/logs/%d/%d", logID, foodItemID), update)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apiError(status, raw)
	}
	var out struct {
		Log *FoodLog `json:"log"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out.Log, nil
}

// DeleteFoodItem reports logDeleted when the server removed the whole log
// because its last item went away.
func (a *API) DeleteFoodItem(logID, foodItemID uint) (logDeleted bool, err error) {
	status, raw, err := a.do(http.MethodDelete, fmt.Sprintf("/logs/%d/%d", logID, foodItemID), nil)
	if err != nil {
		return false, err
	}
	if status != http.StatusOK {
		return false, apiError(status, raw)
	}
	var out struct {
		Log *FoodLog `json:"log"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return false, err
	}
	return out.Log == nil, nil
}
