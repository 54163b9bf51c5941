package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/logger"
	"toolshare-backend/internal/repository"
)

type requestService struct {
	reqRepo     repository.RequestRepository
	chatRepo    repository.ChatRepository
	msgRepo     repository.MessageRepository
	toolRepo    repository.ToolRepository
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
}

func NewRequestService(
	reqRepo repository.RequestRepository,
	chatRepo repository.ChatRepository,
	msgRepo repository.MessageRepository,
	toolRepo repository.ToolRepository,
	userRepo repository.UserRepository,
	paymentRepo repository.PaymentRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) RequestService {
	return &requestService{
		reqRepo:     reqRepo,
		chatRepo:    chatRepo,
		msgRepo:     msgRepo,
		toolRepo:    toolRepo,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
	}
}

// inclusiveDays counts both the start and the end date.
func inclusiveDays(start, end time.Time) (int32, error) {
	days := int32(end.Sub(start).Hours() / 24)
	if days < 0 {
		return 0, apperr.Validation("end date must not be before start date")
	}
	return days + 1, nil
}

func (s *requestService) CreateFromChat(ctx context.Context, actor *domain.User, chatID int32, startDate, endDate time.Time) (*domain.Request, error) {
	chat, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat.ConsumerID != actor.ID {
		return nil, apperr.Forbidden("only the chat consumer can create a request")
	}
	tool, err := s.toolRepo.GetByID(ctx, chat.ToolID)
	if err != nil {
		return nil, err
	}
	if tool.OwnerID != chat.OwnerID {
		return nil, apperr.Validation("chat participants do not match the tool")
	}

	days, err := inclusiveDays(startDate, endDate)
	if err != nil {
		return nil, err
	}

	req := &domain.Request{
		ToolID:      tool.ID,
		OwnerID:     chat.OwnerID,
		ConsumerID:  chat.ConsumerID,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalAmount: float64(days) * tool.DailyPrice,
		Status:      domain.RequestStatusPending,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	// System message so the negotiation thread records the request.
	sysMsg := &domain.Message{
		ChatID:  chatID,
		Content: fmt.Sprintf("Rental request #%d created for '%s' (%s to %s)", req.ID, tool.Name, startDate.Format("2006-01-02"), endDate.Format("2006-01-02")),
	}
	_ = s.msgRepo.Create(ctx, sysMsg)

	s.notify(ctx, req.OwnerID, domain.NotificationRequestCreated,
		fmt.Sprintf("%s requested to rent '%s'", actor.Username, tool.Name))
	if owner, err := s.userRepo.GetByID(ctx, req.OwnerID); err == nil {
		_ = s.emailSvc.SendRequestCreated(ctx, owner.Email, actor.Username, tool.Name)
	}

	logger.Info("request created", "request_id", req.ID, "tool_id", tool.ID, "consumer_id", actor.ID)
	return req, nil
}

func (s *requestService) GetRequest(ctx context.Context, actor *domain.User, id int32) (*domain.Request, error) {
	req, err := s.reqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.OwnerID != actor.ID && req.ConsumerID != actor.ID && !actor.IsAdmin {
		return nil, apperr.Forbidden("not a participant of this request")
	}
	return req, nil
}

func (s *requestService) ListAsConsumer(ctx context.Context, actor *domain.User) ([]domain.Request, error) {
	return s.reqRepo.ListByConsumer(ctx, actor.ID)
}

func (s *requestService) ListAsOwner(ctx context.Context, actor *domain.User) ([]domain.Request, error) {
	return s.reqRepo.ListByOwner(ctx, actor.ID)
}

func (s *requestService) Confirm(ctx context.Context, actor *domain.User, id int32) (*domain.Request, error) {
	req, err := s.reqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.OwnerID != actor.ID && !actor.IsAdmin {
		return nil, apperr.Forbidden("only the owner can confirm a request")
	}
	if req.Status != domain.RequestStatusPending {
		return nil, apperr.InvalidStatef("cannot confirm request in '%s' status", req.Status)
	}

	req.Status = domain.RequestStatusConfirmed
	if err := s.reqRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	s.notifyTransition(ctx, req, req.ConsumerID, domain.NotificationRequestConfirmed, "confirmed")
	return req, nil
}

func (s *requestService) Reject(ctx context.Context, actor *domain.User, id int32) (*domain.Request, error) {
	req, err := s.reqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.OwnerID != actor.ID && !actor.IsAdmin {
		return nil, apperr.Forbidden("only the owner can reject a request")
	}
	if req.Status != domain.RequestStatusPending {
		return nil, apperr.InvalidStatef("cannot reject request in '%s' status", req.Status)
	}

	req.Status = domain.RequestStatusRejected
	if err := s.reqRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	s.notifyTransition(ctx, req, req.ConsumerID, domain.NotificationRequestRejected, "rejected")
	return req, nil
}

func (s *requestService) Cancel(ctx context.Context, actor *domain.User, id int32) (*domain.Request, error) {
	req, err := s.reqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ConsumerID != actor.ID && !actor.IsAdmin {
		return nil, apperr.Forbidden("only the consumer can cancel a request")
	}
	if req.Status != domain.RequestStatusPending && req.Status != domain.RequestStatusConfirmed {
		return nil, apperr.InvalidStatef("cannot cancel request in '%s' status", req.Status)
	}

	req.Status = domain.RequestStatusCancelled
	if err := s.reqRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	s.notifyTransition(ctx, req, req.OwnerID, domain.NotificationRequestCancelled, "cancelled")
	return req, nil
}

func (s *requestService) Pay(ctx context.Context, actor *domain.User, id int32, yapeApprovalCode string) (*domain.Request, error) {
	if yapeApprovalCode == "" {
		return nil, apperr.Validation("approval code is required")
	}
	req, err := s.reqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ConsumerID != actor.ID && !actor.IsAdmin {
		return nil, apperr.Forbidden("only the consumer can pay a request")
	}
	if req.Status != domain.RequestStatusConfirmed {
		return nil, apperr.InvalidStatef("cannot pay request in '%s' status", req.Status)
	}

	req.Status = domain.RequestStatusPaid
	req.YapeApprovalCode = &yapeApprovalCode
	if err := s.reqRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		RequestID: req.ID,
		Amount:    req.TotalAmount,
		Type:      domain.PaymentTypePayment,
		Status:    "completed",
		Reference: uuid.NewString(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.notifyTransition(ctx, req, req.OwnerID, domain.NotificationRequestPaid, "paid")
	logger.Info("request paid", "request_id", req.ID, "payment_id", payment.ID, "amount", payment.Amount)
	return req, nil
}

func (s *requestService) ConfirmDelivery(ctx context.Context, actor *domain.User, id int32) (*domain.Request, error) {
	req, err := s.reqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ConsumerID != actor.ID && !actor.IsAdmin {
		return nil, apperr.Forbidden("only the consumer can confirm delivery")
	}
	if req.Status != domain.RequestStatusPaid && req.Status != domain.RequestStatusConfirmed {
		return nil, apperr.InvalidStatef("cannot confirm delivery in '%s' status", req.Status)
	}

	req.Status = domain.RequestStatusDelivered
	if err := s.reqRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	s.notifyTransition(ctx, req, req.OwnerID, domain.NotificationToolDelivered, "delivered")
	return req, nil
}

func (s *requestService) ConfirmReturn(ctx context.Context, actor *domain.User, id int32) (*domain.Request, error) {
	req, err := s.reqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ConsumerID != actor.ID && !actor.IsAdmin {
		return nil, apperr.Forbidden("only the consumer can return the tool")
	}
	if req.Status != domain.RequestStatusDelivered {
		return nil, apperr.InvalidStatef("cannot return tool in '%s' status", req.Status)
	}

	req.Status = domain.RequestStatusReturned
	if err := s.reqRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	s.notifyTransition(ctx, req, req.OwnerID, domain.NotificationToolReturned, "returned")
	return req, nil
}

func (s *requestService) Complete(ctx context.Context, actor *domain.User, id int32) (*domain.Request, error) {
	req, err := s.reqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.OwnerID != actor.ID && !actor.IsAdmin {
		return nil, apperr.Forbidden("only the owner can complete a request")
	}
	if req.Status != domain.RequestStatusReturned {
		return nil, apperr.InvalidStatef("cannot complete request in '%s' status", req.Status)
	}

	req.Status = domain.RequestStatusCompleted
	if err := s.reqRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	s.notifyTransition(ctx, req, req.ConsumerID, domain.NotificationReturnConfirmed, "completed")
	return req, nil
}

func (s *requestService) ListPayments(ctx context.Context, actor *domain.User, requestID int32) ([]domain.Payment, error) {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.OwnerID != actor.ID && req.ConsumerID != actor.ID && !actor.IsAdmin {
		return nil, apperr.Forbidden("not a participant of this request")
	}
	return s.paymentRepo.ListByRequest(ctx, requestID)
}

// notifyTransition writes the single in-app notification for a status change
// and mirrors it by email, both best-effort.
func (s *requestService) notifyTransition(ctx context.Context, req *domain.Request, recipientID int32, noteType, status string) {
	toolName := fmt.Sprintf("tool #%d", req.ToolID)
	if tool, err := s.toolRepo.GetByID(ctx, req.ToolID); err == nil {
		toolName = tool.Name
	}
	s.notify(ctx, recipientID, noteType,
		fmt.Sprintf("Rental request #%d for '%s' is now %s", req.ID, toolName, status))
	if recipient, err := s.userRepo.GetByID(ctx, recipientID); err == nil {
		_ = s.emailSvc.SendRequestStatusUpdate(ctx, recipient.Email, toolName, status)
	}
}

func (s *requestService) notify(ctx context.Context, userID int32, noteType, content string) {
	err := s.noteRepo.Create(ctx, &domain.Notification{UserID: userID, Type: noteType, Content: content})
	if err != nil {
		logger.Warn("notification write failed", "user_id", userID, "type", noteType, "error", err)
	}
}
