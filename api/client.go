package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/matt-g-everett/algoviz/algo"
)

// Client submits finished runs to a result log API.
type Client struct {
	url  string
	http *http.Client
}

// NewClient posts to the result log served at baseURL.
func NewClient(baseURL string) *Client {
	c := new(Client)
	c.url = strings.TrimRight(baseURL, "/") + "/api/algorithm-results"
	c.http = &http.Client{Timeout: 10 * time.Second}
	return c
}

// LogResult posts r and returns the record as the server stored it.
func (c *Client) LogResult(ctx context.Context, r algo.Result) (algo.Result, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return algo.Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return algo.Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return algo.Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var e ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return algo.Result{}, fmt.Errorf("result log returned %s: %s", resp.Status, e.Error)
	}

	var saved algo.Result
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		return algo.Result{}, err
	}
	return saved, nil
}
