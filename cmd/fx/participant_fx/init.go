package participant_fx

import (
	"errors"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"holiday-api/internal/config"
	"holiday-api/internal/repositories"
	"holiday-api/internal/services"
	"holiday-api/pkg/utils"
)

var Module = fx.Provide(
	provideJWTManager, provideParticipantRepo, provideParticipantService)

func provideJWTManager(cfg *config.Config) (*utils.JWTManager, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	return utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TTL()), nil
}

func provideParticipantRepo(db *gorm.DB) repositories.ParticipantRepository {
	return repositories.NewParticipantRepository(db)
}

func provideParticipantService(repo repositories.ParticipantRepository, tokens *utils.JWTManager) services.ParticipantServiceInterface {
	return services.NewParticipantService(repo, tokens)
}
