package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/application/auth/usecases"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/session"
)

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

// SessionManager issues and clears browser sessions.
type SessionManager interface {
	Start(c *gin.Context, data *session.Data) (string, error)
	Destroy(c *gin.Context, sid string) error
}

// LoginRecorder counts login outcomes.
type LoginRecorder interface {
	LoginAttempt(success bool)
}

// Pinger reports whether the data store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
