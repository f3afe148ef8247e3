package notification

import (
	"context"
	"errors"

	"go.uber.org/zap"

	apperrors "garmentsync/internal/errors"
	"garmentsync/internal/infrastructure/email"
)

// Content is a message body without a recipient.
type Content struct {
	Subject string
	HTML    string
	Text    string
}

type Dispatcher struct {
	sender email.Sender
	logger *zap.Logger
}

func NewDispatcher(sender email.Sender, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{sender: sender, logger: logger.Named("dispatcher")}
}

// Send delivers content to a single recipient. Failures come back as
// *errors.DeliveryError.
func (d *Dispatcher) Send(ctx context.Context, to string, content Content) error {
	err := d.sender.Send(ctx, email.Message{
		To:      to,
		Subject: content.Subject,
		HTML:    content.HTML,
		Text:    content.Text,
	})
	if err != nil {
		return apperrors.NewDeliveryError(to, err)
	}
	return nil
}

// Notify attempts every recipient, one at a time, and returns the joined
// failures. It returns nil when recipients is empty.
func (d *Dispatcher) Notify(ctx context.Context, recipients []string, content Content) error {
	var errs []error
	for _, to := range recipients {
		if err := d.Send(ctx, to, content); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Broadcast is Notify for flows where delivery is best effort. It logs each
// failure and reports how many recipients were reached.
func (d *Dispatcher) Broadcast(ctx context.Context, recipients []string, content Content) int {
	err := d.Notify(ctx, recipients, content)
	if err == nil {
		return len(recipients)
	}

	failures := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		failures = joined.Unwrap()
	}
	for _, failure := range failures {
		recipient := ""
		if deliveryErr, ok := apperrors.IsDeliveryError(failure); ok {
			recipient = deliveryErr.Recipient
		}
		d.logger.Warn("notification not delivered",
			zap.String("recipient", recipient),
			zap.String("subject", content.Subject),
			zap.Error(failure),
		)
	}
	return len(recipients) - len(failures)
}
