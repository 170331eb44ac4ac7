package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/auth"
	"github.com/EDUARX24/Tickets-AI/internal/shared/config"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
	"github.com/EDUARX24/Tickets-AI/internal/shared/utils"
)

// Manager ties server-side sessions to the browser cookie.
type Manager struct {
	store  Store
	tokens *auth.JWTService
	cfg    config.SessionConfig
	logger logger.Interface
}

func NewManager(store Store, tokens *auth.JWTService, cfg config.SessionConfig, log logger.Interface) *Manager {
	return &Manager{store: store, tokens: tokens, cfg: cfg, logger: log}
}

// Start stores data under a fresh id and issues the cookie.
func (m *Manager) Start(c *gin.Context, data *Data) (string, error) {
	sid := uuid.NewString()
	ttl := m.cfg.TTL()

	if err := m.store.Set(c.Request.Context(), sid, data, ttl); err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}
	token, err := m.tokens.Sign(sid, ttl)
	if err != nil {
		_ = m.store.Delete(c.Request.Context(), sid)
		return "", err
	}

	utils.SetSessionCookie(c, m.cfg.Cookie, token, int(ttl/time.Second))
	return sid, nil
}

// Load returns the session named by the request cookie. Missing, tampered
// and expired sessions yield ("", nil, nil).
func (m *Manager) Load(c *gin.Context) (string, *Data, error) {
	token := utils.GetTokenFromCookie(c, m.cfg.Cookie.Name)
	if token == "" {
		return "", nil, nil
	}

	sid, err := m.tokens.Parse(token)
	if err != nil {
		m.logger.Debugw("rejected session cookie", "error", err)
		return "", nil, nil
	}

	data, err := m.store.Get(c.Request.Context(), sid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, nil
		}
		return "", nil, err
	}
	return sid, data, nil
}

// Save rewrites an existing session, for example after a company is linked.
func (m *Manager) Save(c *gin.Context, sid string, data *Data) error {
	if err := m.store.Set(c.Request.Context(), sid, data, m.cfg.TTL()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Destroy removes the stored session and clears the cookie. The cookie is
// cleared even when the store fails.
func (m *Manager) Destroy(c *gin.Context, sid string) error {
	utils.ClearSessionCookie(c, m.cfg.Cookie)
	if sid == "" {
		return nil
	}
	if err := m.store.Delete(c.Request.Context(), sid); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
