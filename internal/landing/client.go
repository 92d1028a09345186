package landing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrNotAList         = errors.New("response is not a list")
)

// Client is the HTTP Fetcher backed by the Fiber agent.
type Client struct {
	baseURL string
	timeout time.Duration
}

// NewClient returns a client for the catalog API at baseURL. A zero timeout
// leaves requests bounded only by the caller's context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), timeout: timeout}
}

// GetData performs GET baseURL+path and decodes the body as a JSON array.
// Transport failures, non-2xx statuses and non-array bodies are errors.
func (c *Client) GetData(ctx context.Context, path string) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout, err := c.effectiveTimeout(ctx)
	if err != nil {
		return nil, err
	}

	a := fiber.Get(c.baseURL + path)
	a.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if timeout > 0 {
		a.Timeout(timeout)
	}

	// the agent has no context support, so the request runs on its own
	// goroutine and is abandoned when ctx is done
	done := make(chan response, 1)
	go func() {
		code, body, errs := a.Bytes()
		done <- response{code: code, body: body, errs: errs}
	}()

	var res response
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("get %s: %w", path, ctx.Err())
	case res = <-done:
	}

	code, body, errs := res.code, res.body, res.errs
	if len(errs) > 0 {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("get %s: %w", path, ctxErr)
		}
		return nil, fmt.Errorf("get %s: %w", path, errors.Join(errs...))
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return nil, fmt.Errorf("get %s: %w %d", path, ErrUnexpectedStatus, code)
	}

	var items []Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("get %s: %w: %v", path, ErrNotAList, err)
	}
	if items == nil {
		return nil, fmt.Errorf("get %s: %w: null body", path, ErrNotAList)
	}
	return items, nil
}

type response struct {
	code int
	body []byte
	errs []error
}

// effectiveTimeout is the smaller of the client timeout and the time left
// before the context deadline. A deadline already reached is an error.
func (c *Client) effectiveTimeout(ctx context.Context) (time.Duration, error) {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return 0, context.DeadlineExceeded
		}
		if timeout <= 0 || remaining < timeout {
			timeout = remaining
		}
	}
	return timeout, nil
}
