package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/auth"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/database"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/persistence/seeds"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/repository"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/EDUARX24/Tickets-AI/internal/interfaces/http"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

var (
	env           string
	adminUsername string
	adminEmail    string
	adminPassword string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data",
		Long:  `Insert the ticket categories and priorities and optionally create the first system administrator.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&adminUsername, "admin-username", "admin", "Username of the system administrator to create")
	cmd.Flags().StringVar(&adminEmail, "admin-email", "", "Email of the system administrator to create")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "", "Password of the system administrator to create")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Load(env)
	if err != nil {
		return err
	}

	gw, db, err := httpRouter.OpenGateway(cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer database.Close(db)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	inserted, err := seeds.SeedReferenceData(ctx, gw)
	if err != nil {
		return fmt.Errorf("failed to seed reference data: %w", err)
	}
	log.Infow("reference data seeded", "inserted", inserted)

	if adminEmail == "" {
		return nil
	}
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	return ensureSystemAdmin(ctx, repository.NewUserRepository(gw), hasher, log, adminUsername, adminEmail, adminPassword)
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

// ensureSystemAdmin creates the administrator unless the email is taken.
func ensureSystemAdmin(
	ctx context.Context,
	repo user.Repository,
	hasher passwordHasher,
	log logger.Interface,
	username, email, password string,
) error {
	email = strings.TrimSpace(email)
	if password == "" {
		return fmt.Errorf("--admin-password is required with --admin-email")
	}

	existing, err := repo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up administrator: %w", err)
	}
	if existing != nil {
		log.Infow("system administrator already exists", "user_id", existing.ID(), "role", existing.Role())
		return nil
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	admin, err := user.NewUser(username, email, hash, user.RoleSystemAdmin)
	if err != nil {
		return err
	}
	if err := repo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create administrator: %w", err)
	}

	log.Infow("system administrator created", "user_id", admin.ID(), "username", admin.Username())
	return nil
}
