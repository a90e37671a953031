// Package directory resolves customer contact details from the auth service.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/ports"
	"fastereats/internal/pkg/errs"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

const serviceName = "user-directory"

// userDTO is the public user profile served by GET /api/users/{id}.
type userDTO struct {
	ID        string `json:"_id"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Options tune the retry policy. Zero values fall back to the defaults.
type Options struct {
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Client implements ports.UserDirectory. Lookups are idempotent reads, so
// transport errors and 5xx answers are retried with backoff.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

func NewClient(baseURL string, opts Options, logger *slog.Logger) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.RetryMax == 0 {
		opts.RetryMax = 3
	}
	if opts.RetryWaitMin == 0 {
		opts.RetryWaitMin = 100 * time.Millisecond
	}
	if opts.RetryWaitMax == 0 {
		opts.RetryWaitMax = 2 * time.Second
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = cleanhttp.DefaultPooledClient()
	rc.HTTPClient.Timeout = opts.Timeout
	rc.RetryMax = opts.RetryMax
	rc.RetryWaitMin = opts.RetryWaitMin
	rc.RetryWaitMax = opts.RetryWaitMax
	rc.Logger = logger.With("component", serviceName)

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    rc,
	}
}

func (c *Client) GetUser(ctx context.Context, id kernel.UUID) (ports.Contact, error) {
	endpoint := fmt.Sprintf("%s/api/users/%s", c.baseURL, url.PathEscape(id.String()))
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.Contact{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return ports.Contact{}, errs.NewServiceUnavailableError(serviceName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ports.Contact{}, errs.NewObjectNotFoundError("userId", id.String())
	case resp.StatusCode != http.StatusOK:
		return ports.Contact{}, errs.NewServiceUnavailableError(serviceName,
			fmt.Errorf("unexpected status: %d", resp.StatusCode))
	}

	var dto userDTO
	if err = json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return ports.Contact{}, errs.NewServiceUnavailableError(serviceName, fmt.Errorf("decode response: %w", err))
	}

	return ports.Contact{
		ID:        id,
		Email:     dto.Email,
		Phone:     dto.Phone,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
	}, nil
}
