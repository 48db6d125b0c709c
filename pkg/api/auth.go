package api

// RegisterPayload is the body of POST /auth/register.
type RegisterPayload struct {
	Name     string `json:"name"               validate:"required"`
	Email    string `json:"email"              validate:"required,email"`
	Password string `json:"password"           validate:"required,min=8"`
	Phone    string `json:"phone,omitempty"    validate:"omitempty,min=7"`
	Company  string `json:"company,omitempty"`
}

// LoginPayload is the body of POST /auth/login.
type LoginPayload struct {
	Email      string `json:"email"                 validate:"required,email"`
	Password   string `json:"password"              validate:"required,min=8"`
	DeviceName string `json:"device_name,omitempty"`
}

// Tokens is the access/refresh pair issued by the server.
// The pair is treated as a single unit of session state: it is persisted and
// cleared together, never one half at a time.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthData is the payload of a successful login or registration.
// ExpiresIn is advisory: the client does not self-expire tokens, it relies on
// 401 responses to trigger a refresh.
type AuthData struct {
	User      User   `json:"user"`
	Tokens    Tokens `json:"tokens"`
	ExpiresIn int64  `json:"expires_in,omitempty"`
}

// AuthResponse wraps AuthData in the backend's data envelope.
type AuthResponse struct {
	Data AuthData `json:"data"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshData is the rotated token pair returned by POST /auth/refresh.
type RefreshData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// RefreshResponse wraps RefreshData in the backend's data envelope.
type RefreshResponse struct {
	Data RefreshData `json:"data"`
}

// LogoutRequest is the body of POST /auth/logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutResponse is the body returned by POST /auth/logout.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// FieldError is one entry of a 400 validation error body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the backend's error body. Validation failures (400) carry
// Errors; other statuses carry Message and an optional machine-readable Code.
type ErrorResponse struct {
	Message string       `json:"message,omitempty"`
	Code    string       `json:"code,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}
