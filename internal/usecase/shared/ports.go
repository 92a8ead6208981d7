package shared

import (
	"context"

	"retreat-api/internal/domain/inquiry"
)

// KVStore holds per-client anti-spam state as plain strings.
// Get reports found=false for a missing key; an error means the store itself failed.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// MsgDeliveryFailed is the only delivery failure text a visitor ever sees.
const MsgDeliveryFailed = "We couldn't send your request. Please try again or contact us directly."

// DispatchResult is the outcome of one delivery attempt. Error carries a
// visitor-safe message; provider detail never leaves the delivery client.
type DispatchResult struct {
	Success  bool
	Status   int
	Response string
	Error    string
}

type Mailer interface {
	SendBooking(ctx context.Context, booking inquiry.Booking) DispatchResult
	SendContact(ctx context.Context, contact inquiry.Contact) DispatchResult
}

// TripResolver turns a trip id into its readable "<dates> - <location>" label.
type TripResolver interface {
	ResolveTrip(id string) (string, bool)
}
