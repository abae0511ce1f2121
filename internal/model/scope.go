package model

// Scope carries the authenticated request identity through the service.
type Scope struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	SessionID string `json:"session_id"`
}
