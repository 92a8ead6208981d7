package commands

import (
	"context"
	"log/slog"
	"time"

	"retreat-api/internal/domain/inquiry"
	"retreat-api/internal/pkg/errs"
	"retreat-api/internal/pkg/sanitize"
	"retreat-api/internal/usecase"
	"retreat-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSpamRejected   = errs.New("submission rejected by anti-spam gate")
	ErrValidation     = errs.New("submission failed validation")
	ErrDeliveryFailed = errs.New("submission delivery failed")
)

const (
	MsgBookingReceived = "Thank you for your interest in Asana n Surf. We'll review your request and get back to you within 24 hours to confirm availability and next steps."
	MsgContactReceived = "Thank you for your message! We'll get back to you soon."
)

// SpamRejectedError carries the gate's visitor-facing message.
type SpamRejectedError struct {
	Message string
}

func (e *SpamRejectedError) Error() string        { return e.Message }
func (e *SpamRejectedError) Is(target error) bool { return target == ErrSpamRejected }

// ValidationError maps field names to their first failing message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string        { return "validation failed" }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

type DeliveryError struct {
	Message string
	Status  int
}

func (e *DeliveryError) Error() string        { return e.Message }
func (e *DeliveryError) Is(target error) bool { return target == ErrDeliveryFailed }

type BookingInput struct {
	Booking  inquiry.Booking
	Honeypot string
}

type ContactInput struct {
	Contact  inquiry.Contact
	Honeypot string
}

type SubmitResult struct {
	Reference uuid.UUID
	Kind      inquiry.Kind
	Message   string
}

type InquiryCommands interface {
	SubmitBooking(ctx context.Context, client string, in BookingInput) (*SubmitResult, error)
	SubmitContact(ctx context.Context, client string, in ContactInput) (*SubmitResult, error)
}

type inquiryCommandsImpl struct {
	gate    usecase.SpamGate
	mailer  shared.Mailer
	trips   shared.TripResolver
	timeout time.Duration
	logger  *slog.Logger
}

func NewInquiryCommands(
	gate usecase.SpamGate,
	mailer shared.Mailer,
	trips shared.TripResolver,
	timeout time.Duration,
	logger *slog.Logger,
) InquiryCommands {
	return &inquiryCommandsImpl{
		gate:    gate,
		mailer:  mailer,
		trips:   trips,
		timeout: timeout,
		logger:  logger,
	}
}

type deliverFunc func(ctx context.Context, clean map[string]string) shared.DispatchResult

func (uc *inquiryCommandsImpl) SubmitBooking(ctx context.Context, client string, in BookingInput) (*SubmitResult, error) {
	return uc.submit(ctx, client, in.Honeypot, inquiry.KindBooking, in.Booking.Fields(), inquiry.BookingRequiredFields,
		func(ctx context.Context, clean map[string]string) shared.DispatchResult {
			booking := inquiry.BookingFromFields(clean)
			if label, ok := uc.trips.ResolveTrip(booking.Dates); ok {
				booking.Dates = label
			}
			return uc.mailer.SendBooking(ctx, booking)
		})
}

func (uc *inquiryCommandsImpl) SubmitContact(ctx context.Context, client string, in ContactInput) (*SubmitResult, error) {
	return uc.submit(ctx, client, in.Honeypot, inquiry.KindContact, in.Contact.Fields(), inquiry.ContactRequiredFields,
		func(ctx context.Context, clean map[string]string) shared.DispatchResult {
			return uc.mailer.SendContact(ctx, inquiry.ContactFromFields(clean))
		})
}

// submit runs gate, validation, sanitization and delivery in that order.
// Validation sees raw values; only sanitized values are delivered.
func (uc *inquiryCommandsImpl) submit(
	ctx context.Context,
	client, honeypot string,
	kind inquiry.Kind,
	raw map[string]string,
	required []string,
	deliver deliverFunc,
) (*SubmitResult, error) {
	ref := uuid.New()
	log := uc.logger.With("reference", ref.String(), "kind", string(kind), "client", client)

	if check := uc.gate.Check(ctx, client, honeypot); !check.IsValid {
		log.Info("submission rejected by anti-spam gate", "reason", check.Message)
		return nil, &SpamRejectedError{Message: check.Message}
	}

	if result := inquiry.ValidateForm(raw, required); !result.IsValid {
		log.Info("submission failed validation", "fields", len(result.Errors))
		return nil, &ValidationError{Fields: result.Errors}
	}

	clean := sanitize.All(raw)

	dctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	dispatch := deliver(dctx, clean)
	if !dispatch.Success {
		log.Warn("submission delivery failed", "status", dispatch.Status)
		msg := dispatch.Error
		if msg == "" {
			msg = shared.MsgDeliveryFailed
		}
		return nil, &DeliveryError{Message: msg, Status: dispatch.Status}
	}

	// delivery already succeeded; store failures are logged only
	if err := uc.gate.OnSubmitSuccess(ctx, client); err != nil {
		log.Warn("failed to record successful submission", "error", err)
	}

	log.Info("submission delivered", "status", dispatch.Status)

	msg := MsgContactReceived
	if kind == inquiry.KindBooking {
		msg = MsgBookingReceived
	}
	return &SubmitResult{Reference: ref, Kind: kind, Message: msg}, nil
}
