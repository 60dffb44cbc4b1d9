package usecase

import (
	"context"
	"errors"
	"fmt"

	"northern-forge-site/internal/domain"
	"northern-forge-site/pkg/logger"
	"northern-forge-site/pkg/metrics"
)

type contactUsecase struct {
	sinks []domain.ContactSink
}

// NewContactUsecase creates a contact usecase delivering to the given sinks in order.
// Nil sinks are skipped so callers can pass optional ones unconditionally.
func NewContactUsecase(sinks ...domain.ContactSink) domain.ContactUsecase {
	uc := &contactUsecase{}
	for _, s := range sinks {
		if s != nil {
			uc.sinks = append(uc.sinks, s)
		}
	}
	return uc
}

func (uc *contactUsecase) Available() bool {
	return len(uc.sinks) > 0
}

// SendContactMessage hands the submission to every sink once. It succeeds when
// at least one sink accepts it; no sink is retried.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, sub *domain.ContactSubmission) error {
	if !uc.Available() {
		return domain.ErrDeliveryUnavailable
	}

	var (
		errs      []error
		delivered int
	)
	for _, sink := range uc.sinks {
		if err := sink.Deliver(ctx, sub); err != nil {
			metrics.ContactDeliveries.WithLabelValues(sink.Name(), "error").Inc()
			logger.Log.Error("Contact delivery failed",
				"sink", sink.Name(),
				"submission_id", sub.ID,
				"error", err)
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
			continue
		}
		metrics.ContactDeliveries.WithLabelValues(sink.Name(), "ok").Inc()
		delivered++
	}

	if delivered == 0 {
		return fmt.Errorf("%w: %w", domain.ErrDeliveryFailed, errors.Join(errs...))
	}

	logger.Log.Info("Contact submission delivered",
		"submission_id", sub.ID,
		"service_interest", sub.ServiceInterest,
		"sinks", delivered,
		"failed_sinks", len(errs))
	return nil
}
