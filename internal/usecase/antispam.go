package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"retreat-api/internal/pkg/clock"
	"retreat-api/internal/pkg/config"
	"retreat-api/internal/pkg/errs"
	"retreat-api/internal/usecase/shared"
)

const (
	MsgHoneypot    = "Spam detected. Please contact us directly if you are a real user."
	MsgRateLimited = "Please wait %d seconds before submitting again."
	MsgTooFast     = "Form submitted too quickly. Please take a moment to review your information."

	keyLastSubmit = "lastSubmitTime"
	keyFormStart  = "formStartTime"
)

type SpamCheckResult struct {
	IsValid bool
	Message string
}

// SpamGate is a per-client deterrent against bots and rapid resubmission.
// It is not a security boundary.
type SpamGate interface {
	RecordFormStart(ctx context.Context, client string) error
	Check(ctx context.Context, client, honeypot string) SpamCheckResult
	OnSubmitSuccess(ctx context.Context, client string) error
}

type spamGateImpl struct {
	store       shared.KVStore
	clock       clock.Clock
	window      time.Duration
	minFillTime time.Duration
	logger      *slog.Logger
}

func NewSpamGate(store shared.KVStore, clk clock.Clock, cfg config.AntiSpamConfig, logger *slog.Logger) SpamGate {
	return &spamGateImpl{
		store:       store,
		clock:       clk,
		window:      cfg.RateLimitWindow,
		minFillTime: cfg.MinFillTime,
		logger:      logger,
	}
}

func stateKey(client, name string) string {
	return client + ":" + name
}

// RecordFormStart stores the first time the client opened a form; later calls keep it.
func (g *spamGateImpl) RecordFormStart(ctx context.Context, client string) error {
	key := stateKey(client, keyFormStart)
	if _, ok := g.readMillis(ctx, key); ok {
		return nil
	}
	if err := g.store.Set(ctx, key, strconv.FormatInt(clock.UnixMilli(g.clock), 10)); err != nil {
		return errs.Mark(errs.Wrap(err, "record form start"), errs.ErrStoreOperation)
	}
	return nil
}

func (g *spamGateImpl) Check(ctx context.Context, client, honeypot string) SpamCheckResult {
	if honeypot != "" {
		return SpamCheckResult{IsValid: false, Message: MsgHoneypot}
	}

	now := clock.UnixMilli(g.clock)

	if last, ok := g.readMillis(ctx, stateKey(client, keyLastSubmit)); ok {
		elapsed := now - last
		if window := g.window.Milliseconds(); elapsed < window {
			wait := int(math.Ceil(float64(window-elapsed) / 1000))
			return SpamCheckResult{IsValid: false, Message: fmt.Sprintf(MsgRateLimited, wait)}
		}
	}

	// no recorded start passes; the gate is a deterrent
	if start, ok := g.readMillis(ctx, stateKey(client, keyFormStart)); ok {
		if now-start < g.minFillTime.Milliseconds() {
			return SpamCheckResult{IsValid: false, Message: MsgTooFast}
		}
	}

	return SpamCheckResult{IsValid: true}
}

// OnSubmitSuccess opens a new rate-limit window and clears the fill-time start.
func (g *spamGateImpl) OnSubmitSuccess(ctx context.Context, client string) error {
	now := strconv.FormatInt(clock.UnixMilli(g.clock), 10)
	if err := g.store.Set(ctx, stateKey(client, keyLastSubmit), now); err != nil {
		return errs.Mark(errs.Wrap(err, "stamp last submit"), errs.ErrStoreOperation)
	}
	if err := g.store.Remove(ctx, stateKey(client, keyFormStart)); err != nil {
		return errs.Mark(errs.Wrap(err, "clear form start"), errs.ErrStoreOperation)
	}
	return nil
}

// readMillis treats missing, unreadable and unparseable values alike as absent.
func (g *spamGateImpl) readMillis(ctx context.Context, key string) (int64, bool) {
	raw, found, err := g.store.Get(ctx, key)
	if err != nil {
		g.logger.Warn("anti-spam state unavailable", "key", key, "error", err)
		return 0, false
	}
	if !found {
		return 0, false
	}
	ms, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		g.logger.Warn("ignoring malformed anti-spam state", "key", key, "error", errs.Mark(err, errs.ErrInvalidStoredValue))
		return 0, false
	}
	return ms, true
}
