package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusConfirmed RequestStatus = "confirmed"
	RequestStatusPaid      RequestStatus = "paid"
	RequestStatusDelivered RequestStatus = "delivered"
	RequestStatusReturned  RequestStatus = "returned"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// Request is the negotiation workflow object: a consumer asking a tool's
// owner for a rental over a date range. Its status moves along a closed set
// of transitions, each gated to one participant.
type Request struct {
	ID               int32         `json:"id"`
	ToolID           int32         `json:"tool_id"`
	OwnerID          int32         `json:"owner_id"`
	ConsumerID       int32         `json:"consumer_id"`
	StartDate        time.Time     `json:"start_date"`
	EndDate          time.Time     `json:"end_date"`
	TotalAmount      float64       `json:"total_amount"`
	Status           RequestStatus `json:"status"`
	YapeApprovalCode *string       `json:"yape_approval_code,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
