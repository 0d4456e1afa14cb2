package kanban

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gearguard/internal/domain"
)

// Client talks to the backend's status endpoint on behalf of a Board.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, token: token, httpClient: httpClient}
}

type statusPayload struct {
	Status string `json:"status"`
}

type errorBody struct {
	Message string `json:"message"`
}

type listEnvelope struct {
	Body []struct {
		ID      uint64 `json:"id"`
		Subject string `json:"subject"`
		Status  string `json:"status"`
	} `json:"body"`
}

// FetchCards loads the full request list for board population.
func (c *Client) FetchCards(ctx context.Context) ([]Card, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/requests", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch requests: HTTP %d", resp.StatusCode)
	}

	var envelope listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}

	cards := make([]Card, 0, len(envelope.Body))
	for _, item := range envelope.Body {
		cards = append(cards, Card{
			ID:      item.ID,
			Subject: item.Subject,
			Status:  domain.Status(item.Status),
		})
	}
	return cards, nil
}

// UpdateStatus issues PATCH /api/requests/:id/status with a bearer token.
func (c *Client) UpdateStatus(ctx context.Context, id uint64, status domain.Status) error {
	body, err := json.Marshal(statusPayload{Status: string(status)})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/requests/%d/status", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var parsed errorBody
	if json.Unmarshal(raw, &parsed) == nil && parsed.Message != "" {
		return fmt.Errorf("update status: %s (HTTP %d)", parsed.Message, resp.StatusCode)
	}
	return fmt.Errorf("update status: HTTP %d", resp.StatusCode)
}
