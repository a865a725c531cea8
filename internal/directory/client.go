// Package directory — клиент реестра офицеров (user-service).
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Roster отдаёт офицеров департамента, доступных для назначения.
// Порядок ответа значим: балансировщик при равной нагрузке берёт первого.
type Roster interface {
	AvailableOfficers(ctx context.Context, departmentID int64) ([]int64, error)
}

// Client ходит в user-service по HTTP. Межсервисные вызовы подписываются
// токеном в X-Internal-Token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient возвращает клиент. Если baseURL пустой, AvailableOfficers
// отдаёт пустой реестр.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type officerEntry struct {
	ID int64 `json:"id"`
}

type officersResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []officerEntry `json:"data"`
}

func (c *Client) AvailableOfficers(ctx context.Context, departmentID int64) ([]int64, error) {
	if c.baseURL == "" {
		return nil, nil
	}
	url := fmt.Sprintf("%s/users/officers/available/%d", c.baseURL, departmentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("directory: new request: %w", err)
	}
	req.Header.Set("X-Internal-Token", c.token)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory: status %d for department %d", resp.StatusCode, departmentID)
	}
	var body officersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("directory: decode: %w", err)
	}
	ids := make([]int64, 0, len(body.Data))
	for _, o := range body.Data {
		ids = append(ids, o.ID)
	}
	return ids, nil
}
