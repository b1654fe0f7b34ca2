package realtime

import "gentlecare/internal/notifier"

// HubDeliverer lets the notifier push through the WebSocket hub. A user
// without an open socket reports undelivered, which the sink treats as the
// store-only path, mirroring a device that refused notification permission.
type HubDeliverer struct {
	hub *Hub
}

func NewHubDeliverer(hub *Hub) *HubDeliverer {
	return &HubDeliverer{hub: hub}
}

func (d *HubDeliverer) Deliver(userID int64, n notifier.Notification) bool {
	return d.hub.PushToUser(userID, &Event{
		Type:    EventNotification,
		Payload: n,
	})
}

var _ notifier.Deliverer = (*HubDeliverer)(nil)
