// Package notification talks to the SMS and email gateway.
package notification

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fastereats/internal/core/ports"
	"fastereats/internal/pkg/errs"

	"github.com/hashicorp/go-cleanhttp"
)

const serviceName = "notification"

type smsRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type attachmentDTO struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type emailRequest struct {
	To          string          `json:"to"`
	Subject     string          `json:"subject"`
	HTML        string          `json:"html"`
	Attachments []attachmentDTO `json:"attachments,omitempty"`
}

// Client implements ports.Notifier. It does not retry: the outbox relay
// redelivers the event when a send fails.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = timeout
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) SendSMS(ctx context.Context, to, message string) error {
	if strings.TrimSpace(to) == "" {
		return errs.NewValueIsRequiredError("to")
	}
	return c.post(ctx, "/send-sms", smsRequest{To: to, Message: message})
}

// SendEmail posts the message with attachments base64-encoded.
func (c *Client) SendEmail(ctx context.Context, email ports.Email) error {
	if strings.TrimSpace(email.To) == "" {
		return errs.NewValueIsRequiredError("to")
	}

	req := emailRequest{To: email.To, Subject: email.Subject, HTML: email.Body}
	for _, a := range email.Attachments {
		req.Attachments = append(req.Attachments, attachmentDTO{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Content:     base64.StdEncoding.EncodeToString(a.Content),
		})
	}
	return c.post(ctx, "/send-email", req)
}

func (c *Client) post(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewServiceUnavailableError(serviceName, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errs.NewServiceUnavailableError(serviceName,
			fmt.Errorf("%s answered %d", path, resp.StatusCode))
	}
	return nil
}
