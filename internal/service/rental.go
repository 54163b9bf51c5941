package service

import (
	"context"
	"time"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/logger"
	"toolshare-backend/internal/repository"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	toolRepo   repository.ToolRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, toolRepo repository.ToolRepository) RentalService {
	return &rentalService{rentalRepo: rentalRepo, toolRepo: toolRepo}
}

func (s *rentalService) CreateRental(ctx context.Context, actor *domain.User, toolID int32, startDate, endDate time.Time, notes string) (*domain.Rental, error) {
	tool, err := s.toolRepo.GetByID(ctx, toolID)
	if err != nil {
		return nil, err
	}
	days, err := inclusiveDays(startDate, endDate)
	if err != nil {
		return nil, err
	}

	// Conditional update claims the tool; losing the race is a conflict, not
	// a retry.
	claimed, err := s.toolRepo.ClaimAvailability(ctx, toolID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, apperr.Conflict("tool is not available")
	}

	rental := &domain.Rental{
		ToolID:     toolID,
		UserID:     actor.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalPrice: float64(days) * tool.DailyPrice,
		Status:     domain.RentalStatusPending,
		Notes:      notes,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		// Free the claim so the failed create does not strand the tool.
		_ = s.toolRepo.ReleaseAvailability(ctx, toolID)
		return nil, err
	}
	logger.Info("rental created", "rental_id", rental.ID, "tool_id", toolID, "user_id", actor.ID)
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, actor *domain.User, id int32) (*domain.Rental, error) {
	rental, _, err := s.loadForParticipant(ctx, actor, id)
	return rental, err
}

func (s *rentalService) ListByUser(ctx context.Context, actor *domain.User, userID, skip, limit int32) ([]domain.Rental, error) {
	if actor.ID != userID && !actor.IsAdmin {
		return nil, apperr.Forbidden("not enough permissions")
	}
	if limit <= 0 {
		limit = 100
	}
	return s.rentalRepo.ListByUser(ctx, userID, skip, limit)
}

func (s *rentalService) ListByTool(ctx context.Context, toolID, skip, limit int32) ([]domain.Rental, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.rentalRepo.ListByTool(ctx, toolID, skip, limit)
}

func (s *rentalService) Activate(ctx context.Context, actor *domain.User, id int32) (*domain.Rental, error) {
	rental, _, err := s.loadForParticipant(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusPending {
		return nil, apperr.InvalidStatef("cannot activate rental in '%s' status", rental.Status)
	}
	rental.Status = domain.RentalStatusActive
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) Return(ctx context.Context, actor *domain.User, id int32, returnedOn time.Time) (*domain.Rental, error) {
	if returnedOn.IsZero() {
		return nil, apperr.Validation("return date is required")
	}
	rental, _, err := s.loadForParticipant(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive && rental.Status != domain.RentalStatusOverdue {
		return nil, apperr.InvalidStatef("cannot return rental in '%s' status", rental.Status)
	}
	rental.Status = domain.RentalStatusReturned
	rental.ActualReturnDate = &returnedOn
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	_ = s.toolRepo.ReleaseAvailability(ctx, rental.ToolID)
	logger.Info("rental returned", "rental_id", rental.ID, "tool_id", rental.ToolID)
	return rental, nil
}

func (s *rentalService) Cancel(ctx context.Context, actor *domain.User, id int32) (*domain.Rental, error) {
	rental, _, err := s.loadForParticipant(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusPending && rental.Status != domain.RentalStatusActive {
		return nil, apperr.InvalidStatef("cannot cancel rental in '%s' status", rental.Status)
	}
	rental.Status = domain.RentalStatusCancelled
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	_ = s.toolRepo.ReleaseAvailability(ctx, rental.ToolID)
	return rental, nil
}

func (s *rentalService) CheckOverdue(ctx context.Context, actor *domain.User) (int32, error) {
	if actor != nil && !actor.IsAdmin {
		return 0, apperr.Forbidden("not enough permissions")
	}
	count, err := s.rentalRepo.MarkOverdue(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Info("rentals marked overdue", "count", count)
	}
	return count, nil
}

func (s *rentalService) Stats(ctx context.Context, actor *domain.User) (*domain.RentalStats, error) {
	if !actor.IsAdmin {
		return nil, apperr.Forbidden("not enough permissions")
	}
	return s.rentalRepo.Stats(ctx)
}

// loadForParticipant fetches the rental and checks the actor is the renter,
// the tool's owner or an admin.
func (s *rentalService) loadForParticipant(ctx context.Context, actor *domain.User, id int32) (*domain.Rental, *domain.Tool, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	tool, err := s.toolRepo.GetByID(ctx, rental.ToolID)
	if err != nil {
		return nil, nil, err
	}
	if rental.UserID != actor.ID && tool.OwnerID != actor.ID && !actor.IsAdmin {
		return nil, nil, apperr.Forbidden("not a participant of this rental")
	}
	return rental, tool, nil
}
