package notification

import (
	"context"
	"errors"

	"gentlecare/internal/domain"
	"gentlecare/internal/notifier"
	"gentlecare/internal/repository"
)

type Service struct {
	feed      FeedRepository
	reminders ReminderLog
	tokens    TokenRegistrar
}

func NewService(feed FeedRepository, reminders ReminderLog, tokens TokenRegistrar) *Service {
	return &Service{feed: feed, reminders: reminders, tokens: tokens}
}

// Feed is the cross-user notification feed (elder activity shown to the
// caretaker and vice versa).

func (s *Service) ListFeed(ctx context.Context, userID int64, limit int) ([]domain.Notification, int64, error) {
	items, err := s.feed.ListByRecipient(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.feed.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return items, unread, nil
}

func (s *Service) MarkFeedRead(ctx context.Context, userID, notificationID int64) error {
	err := s.feed.MarkRead(ctx, notificationID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) MarkAllFeedRead(ctx context.Context, userID int64) error {
	return s.feed.MarkAllRead(ctx, userID)
}

// Reminders is the user's own rolling log written by the notification
// engine: newest first, capped, read-tracked.

func (s *Service) ListReminders(ctx context.Context, userID int64) []notifier.Notification {
	return s.reminders.For(userID).List(ctx)
}

func (s *Service) MarkReminderRead(ctx context.Context, userID int64, reminderID string) error {
	return s.reminders.For(userID).MarkRead(ctx, reminderID)
}

func (s *Service) ClearReminders(ctx context.Context, userID int64) error {
	return s.reminders.For(userID).Clear(ctx)
}

func (s *Service) RegisterToken(ctx context.Context, userID int64, token string) error {
	return s.tokens.RegisterPushToken(ctx, userID, token)
}
