package models

// ErrorResponse is the body of every failed request. Code always equals the
// HTTP status of the response.
type ErrorResponse struct {
	Code    int                 `json:"code"`
	Error   string              `json:"error,omitempty"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// MessageResponse is a bare acknowledgement, e.g. for logout.
type MessageResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Token     string `json:"token"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Code    int     `json:"code"`
	Message string  `json:"message"`
	User    Profile `json:"user"`
	Token   string  `json:"token"`
}

// ProfileResponse carries the profile projection of a user.
type ProfileResponse struct {
	Code    int     `json:"code"`
	Message string  `json:"message,omitempty"`
	User    Profile `json:"user"`
}

// ChatResponse is the body of a successful AI exchange.
type ChatResponse struct {
	Result ChatResult `json:"result"`
}

// ChatResult wraps the stored exchange.
type ChatResult struct {
	Code int          `json:"code"`
	Log  ChatLogEntry `json:"log"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
}
