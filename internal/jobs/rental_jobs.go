package jobs

import (
	"context"

	"toolshare-backend/internal/logger"
)

// MarkOverdueRentals flips active rentals past their end date to overdue.
// Running it twice in a row is a no-op the second time.
func (jr *JobRunner) MarkOverdueRentals() {
	jr.runWithRecovery("MarkOverdueRentals", func() {
		count, err := jr.rentals.CheckOverdue(context.Background(), nil)
		if err != nil {
			logger.Error("Failed to mark overdue rentals", "error", err)
			return
		}
		logger.Info("Marked rentals as overdue", "count", count)
	})
}
