package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusActive    RentalStatus = "active"
	RentalStatusReturned  RentalStatus = "returned"
	RentalStatusOverdue   RentalStatus = "overdue"
	RentalStatusCancelled RentalStatus = "cancelled"
)

// Rental is a confirmed booking of a tool for a date range. Creating one
// claims the tool's availability; returning or cancelling frees it.
type Rental struct {
	ID               int32        `json:"id"`
	ToolID           int32        `json:"tool_id"`
	UserID           int32        `json:"user_id"`
	StartDate        time.Time    `json:"start_date"`
	EndDate          time.Time    `json:"end_date"`
	ActualReturnDate *time.Time   `json:"actual_return_date,omitempty"`
	TotalPrice       float64      `json:"total_price"`
	Status           RentalStatus `json:"status"`
	Notes            string       `json:"notes,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

type RentalStats struct {
	TotalRentals     int32   `json:"total_rentals"`
	ActiveRentals    int32   `json:"active_rentals"`
	OverdueRentals   int32   `json:"overdue_rentals"`
	CompletedRentals int32   `json:"completed_rentals"`
	TotalRevenue     float64 `json:"total_revenue"`
}
