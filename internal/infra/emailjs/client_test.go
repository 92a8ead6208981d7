//go:build unit

package emailjs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"retreat-api/internal/domain/inquiry"
	"retreat-api/internal/infra/emailjs"
	"retreat-api/internal/pkg/config"
	"retreat-api/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type captured struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
	AccessToken    string            `json:"accessToken"`
}

func newServer(t *testing.T, status int, body string, got *captured) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if got != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(endpoint string, env string, logs io.Writer) *emailjs.Client {
	cfg := config.NewTestConfig().EmailJS
	cfg.Endpoint = endpoint
	logger := slog.New(slog.NewJSONHandler(logs, nil))
	return emailjs.NewClient(cfg, config.AppConfig{Env: env}, logger)
}

func TestSendBooking(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, "OK", &got)
	c := newClient(srv.URL, config.EnvProduction, io.Discard)

	result := c.SendBooking(context.Background(), inquiry.Booking{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Package: "Yoga Retreat",
		Dates:   "2026-03-20",
		Guests:  "2",
	})

	assert.Equal(t, shared.DispatchResult{Success: true, Status: http.StatusOK, Response: "OK"}, result)
	assert.Equal(t, "service_test", got.ServiceID)
	assert.Equal(t, "template_booking", got.TemplateID)
	assert.Equal(t, "public_test", got.UserID)
	assert.Empty(t, got.AccessToken)

	want := map[string]string{
		"from_name":        "Jane Doe",
		"from_email":       "jane@example.com",
		"phone":            "Not provided",
		"package":          "Yoga Retreat",
		"preferred_dates":  "2026-03-20",
		"number_of_guests": "2",
		"special_requests": "None",
		"to_name":          "AsanaSurf Team",
	}
	if diff := cmp.Diff(want, got.TemplateParams); diff != "" {
		t.Errorf("template params mismatch (-want +got):\n%s", diff)
	}
}

func TestSendContact(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, "OK", &got)
	cfg := config.NewTestConfig().EmailJS
	cfg.Endpoint = srv.URL
	cfg.PrivateKey = "private_test"
	c := emailjs.NewClient(cfg, config.AppConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	result := c.SendContact(context.Background(), inquiry.Contact{Name: "Ana", Email: "a@b.co", Message: "Hi"})

	assert.True(t, result.Success)
	assert.Equal(t, "template_contact", got.TemplateID)
	assert.Equal(t, "private_test", got.AccessToken)
	want := map[string]string{
		"from_name":  "Ana",
		"from_email": "a@b.co",
		"message":    "Hi",
		"to_name":    "AsanaSurf Team",
	}
	if diff := cmp.Diff(want, got.TemplateParams); diff != "" {
		t.Errorf("template params mismatch (-want +got):\n%s", diff)
	}
}

func TestSend_ProviderRejects(t *testing.T) {
	cases := []struct {
		name    string
		env     string
		verbose bool
	}{
		{"production hides provider detail", config.EnvProduction, false},
		{"development logs provider detail", config.EnvDevelopment, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newServer(t, http.StatusBadRequest, "The template ID is invalid", nil)
			var logs bytes.Buffer
			c := newClient(srv.URL, tc.env, &logs)

			result := c.SendContact(context.Background(), inquiry.Contact{Name: "Ana", Email: "a@b.co", Message: "Hi"})

			assert.False(t, result.Success)
			assert.Equal(t, http.StatusBadRequest, result.Status)
			assert.Equal(t, shared.MsgDeliveryFailed, result.Error)
			assert.Equal(t, tc.verbose, strings.Contains(logs.String(), "The template ID is invalid"))
		})
	}
}

func TestSend_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newClient(url, config.EnvProduction, io.Discard)
	result := c.SendContact(context.Background(), inquiry.Contact{Name: "Ana", Email: "a@b.co", Message: "Hi"})

	assert.False(t, result.Success)
	assert.Equal(t, 0, result.Status)
	assert.Equal(t, shared.MsgDeliveryFailed, result.Error)
}

func TestSend_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	c := newClient(srv.URL, config.EnvProduction, io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	result := c.SendBooking(ctx, inquiry.Booking{Name: "Jane Doe"})

	assert.False(t, result.Success)
	assert.Equal(t, shared.MsgDeliveryFailed, result.Error)
	assert.Less(t, time.Since(start), time.Second)
}

func TestBookingParams_KeepsProvidedOptionals(t *testing.T) {
	params := emailjs.BookingParams(inquiry.Booking{Phone: "+1 555 123 4567", SpecialRequests: "Vegan"}, "Team")
	assert.Equal(t, "+1 555 123 4567", params["phone"])
	assert.Equal(t, "Vegan", params["special_requests"])
	assert.Equal(t, "Team", params["to_name"])
}
