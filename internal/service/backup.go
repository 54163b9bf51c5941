package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/logger"
	"toolshare-backend/internal/repository"
)

type backupService struct {
	dir      string
	userRepo repository.UserRepository
	toolRepo repository.ToolRepository
	cfgRepo  repository.BackupConfigRepository
	logRepo  repository.AdminLogRepository
}

func NewBackupService(
	dir string,
	userRepo repository.UserRepository,
	toolRepo repository.ToolRepository,
	cfgRepo repository.BackupConfigRepository,
	logRepo repository.AdminLogRepository,
) BackupService {
	return &backupService{
		dir:      dir,
		userRepo: userRepo,
		toolRepo: toolRepo,
		cfgRepo:  cfgRepo,
		logRepo:  logRepo,
	}
}

// backupPayload is the on-disk shape of one backup file.
type backupPayload struct {
	CreatedAt     time.Time             `json:"created_at"`
	Users         []backupUser          `json:"users"`
	Tools         []domain.Tool         `json:"tools"`
	BackupConfigs []domain.BackupConfig `json:"backup_configs"`
}

// backupUser re-attaches the credential hash that the API user shape hides,
// so a restored account keeps its password.
type backupUser struct {
	domain.User
	PasswordHash string `json:"password_hash"`
}

func (s *backupService) CreateBackup(ctx context.Context, actor *domain.User, ip *string) (*domain.BackupFile, error) {
	if !actor.IsAdmin {
		return nil, apperr.Forbidden("not enough permissions")
	}

	users, err := s.userRepo.List(ctx, 0, 1<<30)
	if err != nil {
		return nil, err
	}
	tools, err := s.toolRepo.List(ctx, domain.ToolFilter{Limit: 1 << 30})
	if err != nil {
		return nil, err
	}
	configs, err := s.cfgRepo.List(ctx, 0, 1<<30)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, apperr.Internalf("creating backup directory: %v", err)
	}

	now := time.Now()
	filename := fmt.Sprintf("backup_%s.json", now.Format("20060102_150405"))
	path := filepath.Join(s.dir, filename)

	backupUsers := make([]backupUser, len(users))
	for i, u := range users {
		backupUsers[i] = backupUser{User: u, PasswordHash: u.PasswordHash}
	}

	data, err := json.MarshalIndent(backupPayload{
		CreatedAt:     now,
		Users:         backupUsers,
		Tools:         tools,
		BackupConfigs: configs,
	}, "", "  ")
	if err != nil {
		return nil, apperr.Internalf("encoding backup: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, apperr.Internalf("writing backup file: %v", err)
	}

	s.logAction(ctx, actor, "backup", "database", filename, ip)
	logger.Info("backup created", "filename", filename, "size", len(data))
	return &domain.BackupFile{Filename: filename, Size: int64(len(data)), CreatedAt: now}, nil
}

func (s *backupService) ListBackups(ctx context.Context, actor *domain.User) ([]domain.BackupFile, error) {
	if !actor.IsAdmin {
		return nil, apperr.Forbidden("not enough permissions")
	}

	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internalf("reading backup directory: %v", err)
	}

	var files []domain.BackupFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "backup_") || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, domain.BackupFile{
			Filename:  entry.Name(),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].CreatedAt.After(files[j].CreatedAt)
	})
	return files, nil
}

// RestoreBackup validates the file and records the action. The actual data
// replay is performed out of band by an operator.
func (s *backupService) RestoreBackup(ctx context.Context, actor *domain.User, filename string, ip *string) error {
	if !actor.IsAdmin {
		return apperr.Forbidden("not enough permissions")
	}
	if filepath.Base(filename) != filename {
		return apperr.Validation("invalid backup filename")
	}
	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return apperr.NotFound("backup file")
	} else if err != nil {
		return apperr.Internalf("reading backup file: %v", err)
	}
	s.logAction(ctx, actor, "restore", "database", filename, ip)
	logger.Info("backup restore requested", "filename", filename, "admin_id", actor.ID)
	return nil
}

func (s *backupService) CreateConfig(ctx context.Context, actor *domain.User, cfg *domain.BackupConfig, ip *string) error {
	if !actor.IsAdmin {
		return apperr.Forbidden("not enough permissions")
	}
	if cfg.Name == "" {
		return apperr.Validation("backup config name is required")
	}
	cfg.CreatedBy = actor.ID
	cfg.IsActive = true
	if err := s.cfgRepo.Create(ctx, cfg); err != nil {
		return err
	}
	s.logAction(ctx, actor, "create", "backup_config", fmt.Sprintf("%d", cfg.ID), ip)
	return nil
}

func (s *backupService) GetConfig(ctx context.Context, actor *domain.User, id int32) (*domain.BackupConfig, error) {
	if !actor.IsAdmin {
		return nil, apperr.Forbidden("not enough permissions")
	}
	return s.cfgRepo.GetByID(ctx, id)
}

func (s *backupService) ListConfigs(ctx context.Context, actor *domain.User, skip, limit int32) ([]domain.BackupConfig, error) {
	if !actor.IsAdmin {
		return nil, apperr.Forbidden("not enough permissions")
	}
	if limit <= 0 {
		limit = 100
	}
	return s.cfgRepo.List(ctx, skip, limit)
}

func (s *backupService) UpdateConfig(ctx context.Context, actor *domain.User, id int32, patch *domain.BackupConfigPatch, ip *string) (*domain.BackupConfig, error) {
	if !actor.IsAdmin {
		return nil, apperr.Forbidden("not enough permissions")
	}
	cfg, err := s.cfgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(cfg)
	if err := s.cfgRepo.Update(ctx, cfg); err != nil {
		return nil, err
	}
	s.logAction(ctx, actor, "update", "backup_config", fmt.Sprintf("%d", id), ip)
	return cfg, nil
}

func (s *backupService) DeleteConfig(ctx context.Context, actor *domain.User, id int32, ip *string) error {
	if !actor.IsAdmin {
		return apperr.Forbidden("not enough permissions")
	}
	if err := s.cfgRepo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.logAction(ctx, actor, "deactivate", "backup_config", fmt.Sprintf("%d", id), ip)
	return nil
}

func (s *backupService) logAction(ctx context.Context, actor *domain.User, action, resource, resourceID string, ip *string) {
	err := s.logRepo.Create(ctx, &domain.AdminLog{
		AdminID:       actor.ID,
		AdminUsername: actor.Username,
		Action:        action,
		Resource:      resource,
		ResourceID:    resourceID,
		IPAddress:     ip,
	})
	if err != nil {
		logger.Warn("admin log write failed", "action", action, "resource", resource, "error", err)
	}
}
