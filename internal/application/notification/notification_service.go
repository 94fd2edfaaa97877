package notification

import (
	"context"
	"time"

	"github.com/dovepeak/backend/internal/domain/notification"
	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/dovepeak/backend/internal/infrastructure/notifier"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles notification drafting and dispatch
type Service struct {
	notificationRepo notification.Repository
	tenantRepo       tenancy.TenantRepository
	sender           notifier.Notifier
	logger           *zap.Logger
}

// NewService creates a new notification Service
func NewService(notificationRepo notification.Repository, tenantRepo tenancy.TenantRepository, sender notifier.Notifier, logger *zap.Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		tenantRepo:       tenantRepo,
		sender:           sender,
		logger:           logger,
	}
}

// Create drafts a notification addressed to one or more tenants
func (s *Service) Create(ctx context.Context, req CreateNotificationRequest) (*NotificationResponse, error) {
	for _, recipientID := range req.Recipients {
		if _, err := s.tenantRepo.FindByID(ctx, recipientID); err != nil {
			return nil, shared.NewDomainError("INVALID_RECIPIENTS", "Recipient tenant does not exist")
		}
	}

	n, err := notification.NewNotification(notification.Type(req.Type), req.Title, req.Message, req.Recipients, notification.Method(req.Method))
	if err != nil {
		return nil, err
	}

	if req.ScheduledDate != nil {
		if err := n.Schedule(*req.ScheduledDate); err != nil {
			return nil, err
		}
	}

	if err := s.notificationRepo.Add(ctx, n); err != nil {
		return nil, err
	}

	response := ToNotificationResponse(n)
	return &response, nil
}

// GetByID retrieves a notification by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*NotificationResponse, error) {
	n, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToNotificationResponse(n)
	return &response, nil
}

// List retrieves all notifications, optionally filtered by recipient
func (s *Service) List(ctx context.Context, recipientID *uuid.UUID) ([]NotificationResponse, error) {
	var (
		notifications []notification.Notification
		err           error
	)

	if recipientID != nil {
		notifications, err = s.notificationRepo.FindByRecipient(ctx, *recipientID)
	} else {
		notifications, err = s.notificationRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return ToNotificationResponses(notifications), nil
}

// Send dispatches a draft or previously failed notification to every
// recipient over its configured channels. The notification becomes sent
// when at least one delivery succeeds, failed when all deliveries fail.
func (s *Service) Send(ctx context.Context, id uuid.UUID) (*SendResult, error) {
	n, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.Status == notification.StatusSent {
		return nil, shared.NewDomainError("INVALID_STATE", "Notification has already been sent")
	}

	delivered, failed := 0, 0
	for _, recipientID := range n.Recipients {
		tenant, err := s.tenantRepo.FindByID(ctx, recipientID)
		if err != nil {
			s.logger.Warn("Notification recipient no longer exists",
				zap.String("notification_id", n.ID.String()),
				zap.String("tenant_id", recipientID.String()))
			failed++
			continue
		}

		if n.UsesEmail() {
			if err := s.sender.SendEmail(ctx, tenant.Email, n.Title, n.Message); err != nil {
				s.logger.Error("Email delivery failed",
					zap.String("tenant_id", tenant.ID.String()),
					zap.Error(err))
				failed++
				continue
			}
		}
		if n.UsesSMS() {
			if err := s.sender.SendSMS(ctx, tenant.Phone, n.Message); err != nil {
				s.logger.Error("SMS delivery failed",
					zap.String("tenant_id", tenant.ID.String()),
					zap.Error(err))
				failed++
				continue
			}
		}
		delivered++
	}

	if delivered > 0 {
		if err := n.MarkSent(time.Now()); err != nil {
			return nil, err
		}
	} else {
		n.MarkFailed()
	}

	if err := s.notificationRepo.Update(ctx, n); err != nil {
		return nil, err
	}

	return &SendResult{
		Notification: ToNotificationResponse(n),
		Delivered:    delivered,
		Failed:       failed,
	}, nil
}

// Delete removes a notification record
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	removed, err := s.notificationRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return shared.ErrNotFound
	}
	return nil
}
