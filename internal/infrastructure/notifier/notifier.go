// Package notifier sends tenant-facing messages over email and SMS.
package notifier

import (
	"context"
	"fmt"

	"github.com/dovepeak/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Notifier delivers a rendered message to a single recipient
type Notifier interface {
	SendEmail(ctx context.Context, to, subject, body string) error
	SendSMS(ctx context.Context, phone, message string) error
}

// New builds the notifier selected by configuration
func New(ctx context.Context, cfg config.NotifierConfig, logger *zap.Logger) (Notifier, error) {
	switch cfg.Driver {
	case "aws":
		return NewAWSNotifier(ctx, cfg)
	case "log":
		return NewLogNotifier(logger), nil
	default:
		return nil, fmt.Errorf("unknown notifier driver: %q", cfg.Driver)
	}
}
