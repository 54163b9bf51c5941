package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/service"
)

type AdminHandler struct {
	admin   service.AdminService
	backups service.BackupService
}

func NewAdminHandler(admin service.AdminService, backups service.BackupService) *AdminHandler {
	return &AdminHandler{admin: admin, backups: backups}
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.admin.Dashboard(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (h *AdminHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.admin.ListLogs(r.Context(), currentUser(r),
		queryInt32(r, "skip", 0), queryInt32(r, "limit", 100))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (h *AdminHandler) CreateBackup(w http.ResponseWriter, r *http.Request) {
	file, err := h.backups.CreateBackup(r.Context(), currentUser(r), clientIP(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, file)
}

func (h *AdminHandler) ListBackups(w http.ResponseWriter, r *http.Request) {
	files, err := h.backups.ListBackups(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

func (h *AdminHandler) RestoreBackup(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]
	if err := h.backups.RestoreBackup(r.Context(), currentUser(r), filename, clientIP(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"detail": "restore recorded"})
}

func (h *AdminHandler) CreateBackupConfig(w http.ResponseWriter, r *http.Request) {
	var cfg domain.BackupConfig
	if err := decodeJSON(r, &cfg); err != nil {
		writeError(w, err)
		return
	}
	if err := h.backups.CreateConfig(r.Context(), currentUser(r), &cfg, clientIP(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cfg)
}

func (h *AdminHandler) GetBackupConfig(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	cfg, err := h.backups.GetConfig(r.Context(), currentUser(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *AdminHandler) ListBackupConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := h.backups.ListConfigs(r.Context(), currentUser(r),
		queryInt32(r, "skip", 0), queryInt32(r, "limit", 100))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, configs)
}

func (h *AdminHandler) UpdateBackupConfig(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var patch domain.BackupConfigPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	cfg, err := h.backups.UpdateConfig(r.Context(), currentUser(r), id, &patch, clientIP(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *AdminHandler) DeleteBackupConfig(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.backups.DeleteConfig(r.Context(), currentUser(r), id, clientIP(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
