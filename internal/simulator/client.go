package simulator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/radieske/bet-ledger-poc/internal/ledger"
	"github.com/radieske/bet-ledger-poc/internal/ledger-service/dto"
)

// Client fala com a API do ledger-service para semear o catálogo e promover
// status de eventos.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 2 * time.Second},
	}
}

// SetEvents substitui o catálogo do ledger pelo informado.
func (c *Client) SetEvents(ctx context.Context, events []ledger.SportEvent) error {
	body, _ := json.Marshal(dto.SetEventsRequest{Events: events})
	req, _ := http.NewRequestWithContext(ctx, http.MethodPut, c.BaseURL+"/v1/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return fmt.Errorf("set events http %d", res.StatusCode)
	}
	return nil
}

// ListEvents devolve o catálogo atual do ledger.
func (c *Client) ListEvents(ctx context.Context) ([]ledger.SportEvent, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/events", nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return nil, fmt.Errorf("list events http %d", res.StatusCode)
	}

	var out dto.EventsResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

// UpdateStatus aplica uma transição de status a um evento.
func (c *Client) UpdateStatus(ctx context.Context, eventID string, status ledger.EventStatus) error {
	body, _ := json.Marshal(dto.UpdateEventStatusRequest{Status: status})
	url := fmt.Sprintf("%s/v1/events/%s/status", c.BaseURL, eventID)
	req, _ := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return fmt.Errorf("update status http %d", res.StatusCode)
	}
	return nil
}
