package di

import (
	"context"
	"time"

	"pgms/config"
	"pgms/helper"
	"pgms/infras/broker"
	"pgms/infras/database"
	"pgms/infras/otel"
	adminService "pgms/internal/domains/admin/service"
	"pgms/internal/tenancy/schema"
	gRepo "pgms/shared/repository"
	"pgms/transport/http"

	"github.com/rs/zerolog/log"
)

const closeTimeout = 5 * time.Second

// Service is the assembled application together with the resources it owns.
type Service struct {
	Config    *config.Config
	HTTP      *http.HTTP
	DB        *database.Connection
	Otel      otel.Otel
	Publisher broker.Publisher
	Admin     adminService.Admin
}

// Bootstrap applies the global migrations and provisions every tenant when
// configured to.
func (s *Service) Bootstrap(ctx context.Context) error {
	if s.Config.DB.AutoMigrate {
		if err := helper.Apply(s.DB, s.Config.DB.MigrationTable); err != nil {
			return err
		}
	}

	if s.Config.Tenancy.ProvisionOnStartup {
		failed, err := s.Admin.ProvisionAll(ctx)
		if err != nil {
			return err
		}

		if failed > 0 {
			log.Warn().Int("failed", failed).Msg("Some tenants could not be provisioned at startup")
		}
	}

	return nil
}

// Close releases the broker, the tracer and the database pools.
func (s *Service) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if err := s.Publisher.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close event publisher")
	}

	if err := s.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shutdown tracer provider")
	}

	if err := s.DB.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database connection")
	}
}

func tableChecker(provisioner schema.Provisioner) gRepo.TableChecker {
	return provisioner
}
