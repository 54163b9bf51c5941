package domain

import "time"

// Notification types produced by request lifecycle transitions.
const (
	NotificationRequestCreated   = "request_created"
	NotificationRequestConfirmed = "request_confirmed"
	NotificationRequestRejected  = "request_rejected"
	NotificationRequestCancelled = "request_cancelled"
	NotificationRequestPaid      = "request_paid"
	NotificationToolDelivered    = "tool_delivered"
	NotificationToolReturned     = "tool_returned"
	NotificationReturnConfirmed  = "return_confirmed"
)

type Notification struct {
	ID        int32     `json:"id"`
	UserID    int32     `json:"user_id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
