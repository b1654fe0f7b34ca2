package notification

import (
	"context"

	"gentlecare/internal/domain"
	"gentlecare/internal/notifier"
)

// FeedRepository is the server-side notification feed (one user writes,
// another reads).
type FeedRepository interface {
	ListByRecipient(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

// ReminderLog exposes each user's rolling reminder log kept by the
// notification engine.
type ReminderLog interface {
	For(userID int64) *notifier.Store
}

// TokenRegistrar records device push-registration tokens.
type TokenRegistrar interface {
	RegisterPushToken(ctx context.Context, userID int64, token string) error
}
