package scope

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"image-insights-srv/internal/model"
)

type contextKey struct{}

// Payload carries the identity fields extracted from a verified token.
type Payload struct {
	UserID    string
	Subject   string
	Username  string
	Role      string
	SessionID string
}

// NewScope creates a new scope from a token payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:    userID,
		Username:  payload.Username,
		Role:      payload.Role,
		SessionID: payload.SessionID,
	}
}

// SetScopeToContext stores the scope in the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, contextKey{}, sc)
}

// GetScopeFromContext returns the scope stored in the context, or a zero scope.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(contextKey{}).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}

// CreateScopeHeader serializes a scope for internal service calls.
func CreateScopeHeader(sc model.Scope) (string, error) {
	jsonData, err := json.Marshal(sc)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(jsonData), nil
}

// ParseScopeHeader deserializes a scope header.
func ParseScopeHeader(scopeHeader string) (model.Scope, error) {
	jsonData, err := base64.StdEncoding.DecodeString(scopeHeader)
	if err != nil {
		return model.Scope{}, err
	}

	var sc model.Scope
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return model.Scope{}, err
	}

	return sc, nil
}
