package notifier

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// Deliverer is the platform notification surface. Deliver reports whether
// the notification actually reached the recipient. False is not an error:
// a recipient without an open channel gets the store-only path.
type Deliverer interface {
	Deliver(userID int64, n Notification) bool
}

// Sink bridges an evaluated candidate into immediate delivery plus an
// entry in each recipient's rolling log. Delivery failing or being
// unavailable never fails the send; the in-app notification centre stays
// populated either way.
type Sink struct {
	deliverer Deliverer
	stores    *StoreSet
	kv        KV
	now       func() time.Time
}

func NewSink(deliverer Deliverer, stores *StoreSet, kv KV) *Sink {
	return &Sink{
		deliverer: deliverer,
		stores:    stores,
		kv:        kv,
		now:       time.Now,
	}
}

// Send fires the candidate at every recipient. Each recipient gets a store
// entry with a fresh id regardless of whether platform delivery succeeded.
// Store persistence failures are logged and swallowed: the device
// notification may already be out, so the pass must not abort.
func (s *Sink) Send(ctx context.Context, recipients []int64, c Candidate) {
	for _, userID := range recipients {
		n := Notification{
			ID:        uuid.NewString(),
			Title:     c.Title,
			Message:   c.Body,
			Type:      c.Payload.Category(),
			Timestamp: s.now(),
			IsRead:    false,
			Data:      encodePayload(c.Payload),
		}

		if s.deliverer != nil {
			if !s.deliverer.Deliver(userID, n) {
				log.Printf("notifier: user %d unreachable, store-only delivery title=%q", userID, c.Title)
			}
		}

		if err := s.stores.For(userID).Append(ctx, n); err != nil {
			log.Printf("notifier: store append failed user=%d id=%s: %v", userID, n.ID, err)
		}
	}
}

// RegisterPushToken persists the user's device push-registration token.
// Called from the client after platform permission is granted; a new token
// overwrites the old one.
func (s *Sink) RegisterPushToken(ctx context.Context, userID int64, token string) error {
	return s.kv.Put(ctx, fmt.Sprintf("%s:%d", pushTokenKey, userID), []byte(token))
}
