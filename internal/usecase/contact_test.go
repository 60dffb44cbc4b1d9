package usecase_test

import (
	"context"
	"errors"
	"testing"

	"northern-forge-site/internal/domain"
	"northern-forge-site/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Sinks
type MockSink struct {
	mock.Mock
	name string
}

func (m *MockSink) Name() string { return m.name }

func (m *MockSink) Deliver(ctx context.Context, sub *domain.ContactSubmission) error {
	return m.Called(ctx, sub).Error(0)
}

func newSink(name string, err error) *MockSink {
	s := &MockSink{name: name}
	s.On("Deliver", mock.Anything, mock.Anything).Return(err)
	return s
}

func submission() *domain.ContactSubmission {
	return &domain.ContactSubmission{ID: "sub-1", Name: "Astrid", Email: "astrid@fjord.co.uk", ServiceInterest: "Starter Forge"}
}

func TestSendContactMessageNoSinks(t *testing.T) {
	var nilSink domain.ContactSink
	uc := usecase.NewContactUsecase(nilSink)

	assert.False(t, uc.Available())
	err := uc.SendContactMessage(context.Background(), submission())
	assert.ErrorIs(t, err, domain.ErrDeliveryUnavailable)
}

func TestSendContactMessageAllSinksCalledOnce(t *testing.T) {
	email := newSink("smtp", nil)
	leads := newSink("leads", nil)
	uc := usecase.NewContactUsecase(email, leads)

	sub := submission()
	require.NoError(t, uc.SendContactMessage(context.Background(), sub))

	email.AssertNumberOfCalls(t, "Deliver", 1)
	leads.AssertNumberOfCalls(t, "Deliver", 1)
	email.AssertCalled(t, "Deliver", mock.Anything, sub)
}

func TestSendContactMessagePartialFailureIsAccepted(t *testing.T) {
	email := newSink("smtp", errors.New("connection refused"))
	leads := newSink("leads", nil)
	uc := usecase.NewContactUsecase(email, leads)

	assert.NoError(t, uc.SendContactMessage(context.Background(), submission()))
	leads.AssertNumberOfCalls(t, "Deliver", 1)
}

func TestSendContactMessageAllFail(t *testing.T) {
	smtpErr := errors.New("connection refused")
	email := newSink("smtp", smtpErr)
	leads := newSink("leads", errors.New("pool closed"))
	uc := usecase.NewContactUsecase(email, leads)

	err := uc.SendContactMessage(context.Background(), submission())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
	assert.ErrorIs(t, err, smtpErr)
	assert.Contains(t, err.Error(), "leads: pool closed")
}
