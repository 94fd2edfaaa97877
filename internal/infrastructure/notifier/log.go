package notifier

import (
	"context"

	"go.uber.org/zap"
)

// LogNotifier writes messages to the log instead of delivering them.
// Used in development and whenever no AWS credentials are configured.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a log-only notifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("notifier")}
}

// SendEmail logs the email instead of sending it
func (n *LogNotifier) SendEmail(ctx context.Context, to, subject, body string) error {
	n.logger.Info("Email notification",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body))
	return nil
}

// SendSMS logs the SMS instead of sending it
func (n *LogNotifier) SendSMS(ctx context.Context, phone, message string) error {
	n.logger.Info("SMS notification",
		zap.String("phone", phone),
		zap.String("message", message))
	return nil
}
