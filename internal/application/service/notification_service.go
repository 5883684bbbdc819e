package service

import (
	"context"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/entity"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/repository"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/apperror"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// NotificationService handles in-app notifications
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// ListNotifications lists a user's notifications, newest first
func (s *NotificationService) ListNotifications(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, unreadOnly bool) (*pagination.PaginatedResult[entity.Notification], error) {
	notifications, total, err := s.notificationRepo.ListByUser(ctx, userID, params, unreadOnly)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(notifications, pag), nil
}

// CountUnread returns the number of unread notifications for a user
func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

// MarkAsRead marks one notification as read. Only the owning user may do so.
func (s *NotificationService) MarkAsRead(ctx context.Context, userID, id uuid.UUID) error {
	notification, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification == nil {
		return apperror.NewNotFoundError("Notification")
	}
	if notification.UserID != userID {
		return apperror.ErrForbidden
	}

	return s.notificationRepo.MarkAsRead(ctx, id)
}

// MarkAllAsRead marks all of a user's notifications as read
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notificationRepo.MarkAllAsRead(ctx, userID)
}

// DeleteNotification removes a notification. Only the owning user may do so.
func (s *NotificationService) DeleteNotification(ctx context.Context, userID, id uuid.UUID) error {
	notification, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification == nil {
		return apperror.NewNotFoundError("Notification")
	}
	if notification.UserID != userID {
		return apperror.ErrForbidden
	}

	return s.notificationRepo.Delete(ctx, id)
}
