package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"toolshare-backend/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	Auth          service.AuthService
	Users         service.UserService
	Tools         service.ToolService
	Categories    service.CategoryService
	Chats         service.ChatService
	Requests      service.RequestService
	Rentals       service.RentalService
	Ratings       service.RatingService
	Reviews       service.ReviewService
	Notifications service.NotificationService
	Admin         service.AdminService
	Backups       service.BackupService
}

func NewRouter(svcs Services) *mux.Router {
	authHandler := NewAuthHandler(svcs.Auth)
	userHandler := NewUserHandler(svcs.Users)
	toolHandler := NewToolHandler(svcs.Tools)
	categoryHandler := NewCategoryHandler(svcs.Categories)
	chatHandler := NewChatHandler(svcs.Chats, svcs.Requests)
	requestHandler := NewRequestHandler(svcs.Requests)
	rentalHandler := NewRentalHandler(svcs.Rentals)
	ratingHandler := NewRatingHandler(svcs.Ratings)
	reviewHandler := NewReviewHandler(svcs.Reviews)
	notificationHandler := NewNotificationHandler(svcs.Notifications)
	adminHandler := NewAdminHandler(svcs.Admin, svcs.Backups)

	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Public surface.
	r.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	r.HandleFunc("/tools", toolHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/tools/{id:[0-9]+}", toolHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/tools/{id:[0-9]+}/ratings", ratingHandler.ListByTool).Methods(http.MethodGet)
	r.HandleFunc("/tools/{id:[0-9]+}/ratings/stats", ratingHandler.Stats).Methods(http.MethodGet)
	r.HandleFunc("/tools/{id:[0-9]+}/reviews", reviewHandler.ListByTool).Methods(http.MethodGet)
	r.HandleFunc("/tools/{id:[0-9]+}/statistics", reviewHandler.ToolStatistics).Methods(http.MethodGet)
	r.HandleFunc("/tools/{id:[0-9]+}/rentals", rentalHandler.ListByTool).Methods(http.MethodGet)
	r.HandleFunc("/categories", categoryHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/categories/{id:[0-9]+}", categoryHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/promotions/active", reviewHandler.ListActivePromotions).Methods(http.MethodGet)

	// Everything below requires a bearer token.
	auth := r.NewRoute().Subrouter()
	auth.Use(authMiddleware(svcs.Auth))

	auth.HandleFunc("/auth/me", authHandler.Me).Methods(http.MethodGet)

	auth.HandleFunc("/users", userHandler.List).Methods(http.MethodGet)
	auth.HandleFunc("/users/{id:[0-9]+}", userHandler.Get).Methods(http.MethodGet)
	auth.HandleFunc("/users/{id:[0-9]+}", userHandler.Update).Methods(http.MethodPatch)
	auth.HandleFunc("/users/{id:[0-9]+}", userHandler.Deactivate).Methods(http.MethodDelete)
	auth.HandleFunc("/users/{id:[0-9]+}/rentals", rentalHandler.ListByUser).Methods(http.MethodGet)
	auth.HandleFunc("/users/{id:[0-9]+}/ratings", ratingHandler.ListByUser).Methods(http.MethodGet)

	auth.HandleFunc("/tools", toolHandler.Create).Methods(http.MethodPost)
	auth.HandleFunc("/tools/{id:[0-9]+}", toolHandler.Update).Methods(http.MethodPatch)
	auth.HandleFunc("/tools/{id:[0-9]+}", toolHandler.Delete).Methods(http.MethodDelete)
	auth.HandleFunc("/tools/{id:[0-9]+}/ratings", ratingHandler.Create).Methods(http.MethodPost)
	auth.HandleFunc("/tools/{id:[0-9]+}/reviews", reviewHandler.Create).Methods(http.MethodPost)
	auth.HandleFunc("/categories", categoryHandler.Create).Methods(http.MethodPost)

	auth.HandleFunc("/chats", chatHandler.Create).Methods(http.MethodPost)
	auth.HandleFunc("/chats", chatHandler.List).Methods(http.MethodGet)
	auth.HandleFunc("/chats/{id:[0-9]+}", chatHandler.Get).Methods(http.MethodGet)
	auth.HandleFunc("/chats/{id:[0-9]+}/messages", chatHandler.SendMessage).Methods(http.MethodPost)
	auth.HandleFunc("/chats/{id:[0-9]+}/requests", chatHandler.CreateRequest).Methods(http.MethodPost)

	auth.HandleFunc("/requests/consumer", requestHandler.ListAsConsumer).Methods(http.MethodGet)
	auth.HandleFunc("/requests/owner", requestHandler.ListAsOwner).Methods(http.MethodGet)
	auth.HandleFunc("/requests/{id:[0-9]+}", requestHandler.Get).Methods(http.MethodGet)
	auth.HandleFunc("/requests/{id:[0-9]+}/confirm", requestHandler.Confirm).Methods(http.MethodPost)
	auth.HandleFunc("/requests/{id:[0-9]+}/reject", requestHandler.Reject).Methods(http.MethodPost)
	auth.HandleFunc("/requests/{id:[0-9]+}/cancel", requestHandler.Cancel).Methods(http.MethodPost)
	auth.HandleFunc("/requests/{id:[0-9]+}/pay", requestHandler.Pay).Methods(http.MethodPost)
	auth.HandleFunc("/requests/{id:[0-9]+}/deliver", requestHandler.ConfirmDelivery).Methods(http.MethodPost)
	auth.HandleFunc("/requests/{id:[0-9]+}/return", requestHandler.ConfirmReturn).Methods(http.MethodPost)
	auth.HandleFunc("/requests/{id:[0-9]+}/complete", requestHandler.Complete).Methods(http.MethodPost)
	auth.HandleFunc("/requests/{id:[0-9]+}/payments", requestHandler.ListPayments).Methods(http.MethodGet)

	auth.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost)
	auth.HandleFunc("/rentals/check-overdue", rentalHandler.CheckOverdue).Methods(http.MethodPost)
	auth.HandleFunc("/rentals/stats", rentalHandler.Stats).Methods(http.MethodGet)
	auth.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Get).Methods(http.MethodGet)
	auth.HandleFunc("/rentals/{id:[0-9]+}/activate", rentalHandler.Activate).Methods(http.MethodPost)
	auth.HandleFunc("/rentals/{id:[0-9]+}/return", rentalHandler.Return).Methods(http.MethodPost)
	auth.HandleFunc("/rentals/{id:[0-9]+}/cancel", rentalHandler.Cancel).Methods(http.MethodPost)

	auth.HandleFunc("/ratings/{id:[0-9]+}", ratingHandler.Update).Methods(http.MethodPatch)
	auth.HandleFunc("/ratings/{id:[0-9]+}", ratingHandler.Delete).Methods(http.MethodDelete)

	auth.HandleFunc("/notifications", notificationHandler.List).Methods(http.MethodGet)
	auth.HandleFunc("/notifications/{id:[0-9]+}/read", notificationHandler.MarkAsRead).Methods(http.MethodPost)

	auth.HandleFunc("/promotions", reviewHandler.CreatePromotion).Methods(http.MethodPost)

	auth.HandleFunc("/admin/dashboard", adminHandler.Dashboard).Methods(http.MethodGet)
	auth.HandleFunc("/admin/logs", adminHandler.ListLogs).Methods(http.MethodGet)
	auth.HandleFunc("/admin/backups", adminHandler.CreateBackup).Methods(http.MethodPost)
	auth.HandleFunc("/admin/backups", adminHandler.ListBackups).Methods(http.MethodGet)
	auth.HandleFunc("/admin/backups/{filename}/restore", adminHandler.RestoreBackup).Methods(http.MethodPost)
	auth.HandleFunc("/admin/backup-configs", adminHandler.CreateBackupConfig).Methods(http.MethodPost)
	auth.HandleFunc("/admin/backup-configs", adminHandler.ListBackupConfigs).Methods(http.MethodGet)
	auth.HandleFunc("/admin/backup-configs/{id:[0-9]+}", adminHandler.GetBackupConfig).Methods(http.MethodGet)
	auth.HandleFunc("/admin/backup-configs/{id:[0-9]+}", adminHandler.UpdateBackupConfig).Methods(http.MethodPatch)
	auth.HandleFunc("/admin/backup-configs/{id:[0-9]+}", adminHandler.DeleteBackupConfig).Methods(http.MethodDelete)

	return r
}
