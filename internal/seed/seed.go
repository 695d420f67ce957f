package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/app/repositories"
	"github.com/emrekoc/acadport/internal/config"
	"github.com/emrekoc/acadport/internal/pkg/apperrors"
	"github.com/emrekoc/acadport/internal/pkg/auth"
)

// CreateDefaultAdmin ensures the configured admin account exists so a fresh
// deployment can be logged into.
func CreateDefaultAdmin(ctx context.Context, repos *repositories.Repositories, cfg *config.Config, lgr zerolog.Logger) error {
	_, err := repos.UserRepository.GetByEmail(ctx, cfg.Admin.Email)
	if err == nil {
		lgr.Debug().Str("email", cfg.Admin.Email).Msg("Default admin already exists")
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:    cfg.Admin.Email,
		Password: hashed,
		Role:     models.RoleAdmin,
		FullName: "Administrator",
	}
	if err := repos.UserRepository.Create(ctx, admin); err != nil {
		// Another instance may have seeded concurrently
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Default admin account created")
	return nil
}
