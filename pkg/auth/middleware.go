package auth

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/GlebRadaev/ipr/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ServiceTokenHeader carries the maintenance token used by the reset tool.
const ServiceTokenHeader = "X-Service-Token"

type ContextKey string

const SessionKey ContextKey = "session"

// Session is resolved once per request and shared by every handler downstream.
type Session struct {
	UserID  uuid.UUID
	IsAdmin bool
	Service bool
}

type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

type RoleResolver interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

type Middleware struct {
	tokens       TokenValidator
	roles        RoleResolver
	serviceToken string
}

func NewMiddleware(tokens TokenValidator, roles RoleResolver, serviceToken string) *Middleware {
	return &Middleware{
		tokens:       tokens,
		roles:        roles,
		serviceToken: serviceToken,
	}
}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, SessionKey, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(SessionKey).(Session)
	return s, ok
}

// BearerToken reads the token from the Authorization header, or from the token query
// parameter for clients that cannot set headers (websocket upgrades).
func BearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return r.URL.Query().Get("token")
}

func (m *Middleware) resolve(r *http.Request) (Session, int) {
	token := BearerToken(r)
	if token == "" {
		return Session{}, http.StatusUnauthorized
	}
	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		return Session{}, http.StatusUnauthorized
	}
	isAdmin, err := m.roles.IsAdmin(r.Context(), claims.UserID)
	if err != nil {
		zap.L().Error("can't resolve role", zap.String("user_id", claims.UserID.String()), zap.Error(err))
		return Session{}, http.StatusInternalServerError
	}
	return Session{UserID: claims.UserID, IsAdmin: isAdmin}, http.StatusOK
}

func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, status := m.resolve(r)
		switch status {
		case http.StatusOK:
		case http.StatusUnauthorized:
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// RequireAdmin must run after Authenticate.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := FromContext(r.Context())
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !session.IsAdmin {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireServiceOrAdmin accepts the configured service token, falling back to an admin session.
func (m *Middleware) RequireServiceOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := r.Header.Get(ServiceTokenHeader); token != "" {
			if m.serviceToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(m.serviceToken)) != 1 {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), Session{Service: true})))
			return
		}
		m.Authenticate(m.RequireAdmin(next)).ServeHTTP(w, r)
	})
}
