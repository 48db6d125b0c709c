package api

// User is the server's user record. The locally cached copy is a read-through
// snapshot; the server stays the source of truth.
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone,omitempty"`
	Company   string   `json:"company,omitempty"`
	AvatarURL string   `json:"avatar_url,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

// UpdateUserPayload describes a PATCH /users/me request. When Avatar is set
// the request is sent as multipart/form-data, otherwise as JSON.
type UpdateUserPayload struct {
	Name    string      `json:"name,omitempty"`
	Phone   string      `json:"phone,omitempty"`
	Company string      `json:"company,omitempty"`
	Avatar  *FileUpload `json:"-"`
}

// UpdateUserResponse is the body returned by PATCH /users/me.
type UpdateUserResponse struct {
	User User `json:"user"`
}

// FileUpload is a local file attached to a multipart request.
type FileUpload struct {
	Path        string
	Name        string
	ContentType string
}

// NotificationSettings is the notifications block of user settings.
type NotificationSettings struct {
	Enabled bool `json:"enabled"`
	Email   bool `json:"email"`
	Push    bool `json:"push"`
}

// UserSettings is the body of GET /users/me/settings.
type UserSettings struct {
	Currency               string               `json:"currency"`
	Notifications          NotificationSettings `json:"notifications"`
	BiometricLockEnabled   bool                 `json:"biometric_lock_enabled"`
	QuickAddDefaultPartner string               `json:"quick_add_default_partner,omitempty"`
	ExportFormat           string               `json:"export_format"`
}

// UpdateSettingsPayload is the body of PUT /users/me/settings. Nil fields are
// left untouched by the server.
type UpdateSettingsPayload struct {
	Currency               *string               `json:"currency,omitempty"`
	Notifications          *NotificationSettings `json:"notifications,omitempty"`
	BiometricLockEnabled   *bool                 `json:"biometric_lock_enabled,omitempty"`
	QuickAddDefaultPartner *string               `json:"quick_add_default_partner,omitempty"`
	ExportFormat           *string               `json:"export_format,omitempty"`
}

// SettingsResponse wraps UserSettings in the backend's data envelope
// (PUT /users/me/settings only; the GET returns the settings unwrapped).
type SettingsResponse struct {
	Data UserSettings `json:"data"`
}
