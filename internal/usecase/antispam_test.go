//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"retreat-api/internal/infra/kvstore"
	"retreat-api/internal/pkg/clock"
	"retreat-api/internal/pkg/config"
	"retreat-api/internal/pkg/errs"
	"retreat-api/internal/usecase"
	sharedmock "retreat-api/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const client = "7b0c4a52-5a3e-4f43-9a8e-1d2b3c4d5e6f"

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type SpamGateTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.MockClock
	store *kvstore.Memory
	gate  usecase.SpamGate
}

func (s *SpamGateTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(t0)
	s.store = kvstore.NewMemory(s.clock)
	s.gate = usecase.NewSpamGate(s.store, s.clock, config.NewTestConfig().AntiSpam, discardLogger())
}

func TestSpamGateSuite(t *testing.T) {
	suite.Run(t, new(SpamGateTestSuite))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *SpamGateTestSuite) TestHoneypot() {
	s.Require().NoError(s.gate.RecordFormStart(s.ctx, client))
	s.clock.Add(time.Minute)

	result := s.gate.Check(s.ctx, client, "http://spam.example")

	s.False(result.IsValid)
	s.Equal(usecase.MsgHoneypot, result.Message)
}

func (s *SpamGateTestSuite) TestFreshClientPasses() {
	result := s.gate.Check(s.ctx, client, "")
	s.True(result.IsValid)
	s.Empty(result.Message)
}

func (s *SpamGateTestSuite) TestMinimumFillTime() {
	s.Require().NoError(s.gate.RecordFormStart(s.ctx, client))

	s.clock.Set(t0.Add(1000 * time.Millisecond))
	result := s.gate.Check(s.ctx, client, "")
	s.False(result.IsValid)
	s.Equal(usecase.MsgTooFast, result.Message)

	s.clock.Set(t0.Add(2500 * time.Millisecond))
	result = s.gate.Check(s.ctx, client, "")
	s.True(result.IsValid)
}

func (s *SpamGateTestSuite) TestRecordFormStartKeepsFirstValue() {
	s.Require().NoError(s.gate.RecordFormStart(s.ctx, client))
	s.clock.Add(1500 * time.Millisecond)
	s.Require().NoError(s.gate.RecordFormStart(s.ctx, client))

	// measured from the first start: 1.5s + 0.6s
	s.clock.Add(600 * time.Millisecond)
	s.True(s.gate.Check(s.ctx, client, "").IsValid)
}

func (s *SpamGateTestSuite) TestRateLimitAfterSuccess() {
	s.Require().NoError(s.gate.OnSubmitSuccess(s.ctx, client))

	cases := []struct {
		offset time.Duration
		valid  bool
		msg    string
	}{
		{5000 * time.Millisecond, false, "Please wait 25 seconds before submitting again."},
		{29001 * time.Millisecond, false, "Please wait 1 seconds before submitting again."},
		{29999 * time.Millisecond, false, "Please wait 1 seconds before submitting again."},
		{100 * time.Millisecond, false, "Please wait 30 seconds before submitting again."},
		{30000 * time.Millisecond, true, ""},
		{31000 * time.Millisecond, true, ""},
	}
	for _, tc := range cases {
		s.clock.Set(t0.Add(tc.offset))
		result := s.gate.Check(s.ctx, client, "")
		s.Equal(tc.valid, result.IsValid, "offset %s", tc.offset)
		s.Equal(tc.msg, result.Message, "offset %s", tc.offset)
	}
}

func (s *SpamGateTestSuite) TestOnSubmitSuccessClearsFormStart() {
	s.Require().NoError(s.gate.RecordFormStart(s.ctx, client))
	s.clock.Add(3 * time.Second)
	s.Require().NoError(s.gate.OnSubmitSuccess(s.ctx, client))

	_, found, err := s.store.Get(s.ctx, client+":formStartTime")
	s.Require().NoError(err)
	s.False(found)

	value, found, err := s.store.Get(s.ctx, client+":lastSubmitTime")
	s.Require().NoError(err)
	s.True(found)
	s.Equal("1740819603000", value)
}

func (s *SpamGateTestSuite) TestClientsAreIndependent() {
	s.Require().NoError(s.gate.OnSubmitSuccess(s.ctx, client))
	s.clock.Add(time.Second)

	s.False(s.gate.Check(s.ctx, client, "").IsValid)
	s.True(s.gate.Check(s.ctx, "another-client", "").IsValid)
}

func (s *SpamGateTestSuite) TestMalformedStateIsIgnored() {
	s.Require().NoError(s.store.Set(s.ctx, client+":lastSubmitTime", "not-a-number"))
	s.Require().NoError(s.store.Set(s.ctx, client+":formStartTime", "NaN"))

	result := s.gate.Check(s.ctx, client, "")
	s.True(result.IsValid)
}

func (s *SpamGateTestSuite) TestStoreReadErrorIsPermissive() {
	ctrl := gomock.NewController(s.T())
	store := sharedmock.NewMockKVStore(ctrl)
	gate := usecase.NewSpamGate(store, s.clock, config.NewTestConfig().AntiSpam, discardLogger())

	store.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", false, errors.New("connection reset")).Times(2)

	s.True(gate.Check(s.ctx, client, "").IsValid)
}

func (s *SpamGateTestSuite) TestStoreWriteErrorIsMarked() {
	ctrl := gomock.NewController(s.T())
	store := sharedmock.NewMockKVStore(ctrl)
	gate := usecase.NewSpamGate(store, s.clock, config.NewTestConfig().AntiSpam, discardLogger())

	store.EXPECT().Get(gomock.Any(), client+":formStartTime").Return("", false, nil)
	store.EXPECT().Set(gomock.Any(), client+":formStartTime", "1740819600000").Return(errors.New("disk full"))

	err := gate.RecordFormStart(s.ctx, client)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrStoreOperation))
}

func (s *SpamGateTestSuite) TestDisabledWindows() {
	gate := usecase.NewSpamGate(s.store, s.clock, config.AntiSpamConfig{}, discardLogger())

	s.Require().NoError(gate.RecordFormStart(s.ctx, client))
	s.Require().NoError(gate.OnSubmitSuccess(s.ctx, client))

	s.True(gate.Check(s.ctx, client, "").IsValid)
}
