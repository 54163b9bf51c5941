package domain

import "time"

// AdminLog is an append-only audit record of an admin action.
type AdminLog struct {
	ID            int32     `json:"id"`
	AdminID       int32     `json:"admin_id"`
	AdminUsername string    `json:"admin_username"`
	Action        string    `json:"action"`
	Resource      string    `json:"resource"`
	ResourceID    string    `json:"resource_id,omitempty"`
	Details       string    `json:"details,omitempty"`
	IPAddress     *string   `json:"ip_address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// BackupConfig is a named, versionable backup policy. Deleting one only
// clears is_active.
type BackupConfig struct {
	ID          int32     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ConfigData  string    `json:"config_data"`
	CreatedBy   int32     `json:"created_by"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BackupConfigPatch carries a partial backup config update.
type BackupConfigPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ConfigData  *string `json:"config_data,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (p *BackupConfigPatch) Apply(c *BackupConfig) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.ConfigData != nil {
		c.ConfigData = *p.ConfigData
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
}

// Dashboard bundles the admin overview aggregates.
type Dashboard struct {
	ToolStats   *ToolStats   `json:"tool_stats"`
	UserStats   *UserStats   `json:"user_stats"`
	RentalStats *RentalStats `json:"rental_stats"`
	RecentLogs  []AdminLog   `json:"recent_logs"`
}

// BackupFile describes one JSON backup on local disk.
type BackupFile struct {
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}
