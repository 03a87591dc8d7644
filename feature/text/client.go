package text

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"text-share/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
)

// DefaultClientTimeout bounds each client request.
const DefaultClientTimeout = 10 * time.Second

// Client talks to a running server's text endpoints.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

// NewClient creates a client for the server at baseURL (e.g. http://localhost:3000).
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: DefaultClientTimeout,
	}
}

// Submit replaces the server's text.
func (c *Client) Submit(text string) error {
	a := fiber.Post(c.baseURL + "/submit-text").
		JSON(fiber.Map{"text": text}).
		Timeout(c.timeout)
	if c.apiKey != "" {
		a.Set(auth.HeaderName, c.apiKey)
	}

	var resp SubmitResponse
	if err := c.do(a, &resp); err != nil {
		return fmt.Errorf("submit text: %w", err)
	}
	if !resp.Success {
		return errors.New("submit text: server did not report success")
	}
	return nil
}

// Fetch returns the server's current text.
func (c *Client) Fetch() (string, error) {
	a := fiber.Get(c.baseURL + "/get-text").Timeout(c.timeout)

	var resp TextResponse
	if err := c.do(a, &resp); err != nil {
		return "", fmt.Errorf("fetch text: %w", err)
	}
	return resp.Text, nil
}

func (c *Client) do(a *fiber.Agent, out any) error {
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if code != fiber.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return fmt.Errorf("server returned %d: %s", code, e.Error)
		}
		return fmt.Errorf("server returned %d", code)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
