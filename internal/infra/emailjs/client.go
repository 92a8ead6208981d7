// Package emailjs delivers accepted inquiries through the EmailJS REST API.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"retreat-api/internal/domain/inquiry"
	"retreat-api/internal/pkg/config"
	"retreat-api/internal/usecase/shared"
)

const (
	defaultPhone           = "Not provided"
	defaultSpecialRequests = "None"

	// provider bodies are short status strings; cap what we keep
	maxResponseBytes = 4 << 10
)

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
	AccessToken    string            `json:"accessToken,omitempty"`
}

type Client struct {
	cfg        config.EmailJSConfig
	httpClient *http.Client
	logger     *slog.Logger
	// provider detail is logged only in development
	verbose bool
}

var _ shared.Mailer = (*Client)(nil)

func NewClient(cfg config.EmailJSConfig, appCfg config.AppConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		verbose:    appCfg.IsDevelopment(),
	}
}

func BookingParams(b inquiry.Booking, recipient string) map[string]string {
	return map[string]string{
		"from_name":        b.Name,
		"from_email":       b.Email,
		"phone":            orDefault(b.Phone, defaultPhone),
		"package":          b.Package,
		"preferred_dates":  b.Dates,
		"number_of_guests": b.Guests,
		"special_requests": orDefault(b.SpecialRequests, defaultSpecialRequests),
		"to_name":          recipient,
	}
}

func ContactParams(c inquiry.Contact, recipient string) map[string]string {
	return map[string]string{
		"from_name":  c.Name,
		"from_email": c.Email,
		"message":    c.Message,
		"to_name":    recipient,
	}
}

func (c *Client) SendBooking(ctx context.Context, booking inquiry.Booking) shared.DispatchResult {
	return c.send(ctx, c.cfg.TemplateIDBooking, BookingParams(booking, c.cfg.RecipientLabel))
}

func (c *Client) SendContact(ctx context.Context, contact inquiry.Contact) shared.DispatchResult {
	return c.send(ctx, c.cfg.TemplateIDContact, ContactParams(contact, c.cfg.RecipientLabel))
}

func (c *Client) send(ctx context.Context, templateID string, params map[string]string) shared.DispatchResult {
	payload := sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     templateID,
		UserID:         c.cfg.PublicKey,
		TemplateParams: params,
		AccessToken:    c.cfg.PrivateKey,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return c.failure(0, "", fmt.Errorf("failed to marshal emailjs payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return c.failure(0, "", fmt.Errorf("failed to create emailjs request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.failure(0, "", fmt.Errorf("failed to send emailjs request: %w", err))
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	text := string(raw)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.failure(resp.StatusCode, text, fmt.Errorf("emailjs returned status %d", resp.StatusCode))
	}

	return shared.DispatchResult{
		Success:  true,
		Status:   resp.StatusCode,
		Response: text,
	}
}

func (c *Client) failure(status int, response string, cause error) shared.DispatchResult {
	if c.verbose {
		c.logger.Error("email delivery failed",
			"status", status,
			"response", response,
			"error", cause,
		)
	} else {
		c.logger.Error("email delivery failed", "status", status)
	}
	return shared.DispatchResult{
		Success:  false,
		Status:   status,
		Response: response,
		Error:    shared.MsgDeliveryFailed,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
