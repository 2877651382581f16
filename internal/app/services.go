package app

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/hemobank/hemobank_backend/config"
	"github.com/hemobank/hemobank_backend/internal/repo"
	"github.com/hemobank/hemobank_backend/internal/service/account"
	"github.com/hemobank/hemobank_backend/internal/service/auth"
	"github.com/hemobank/hemobank_backend/internal/service/bloodbag"
	"github.com/hemobank/hemobank_backend/internal/service/component"
	"github.com/hemobank/hemobank_backend/internal/service/distribution"
	"github.com/hemobank/hemobank_backend/internal/service/statistics"
	pasetotoken "github.com/hemobank/hemobank_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvidePasetoManager,
		ProvideAuthService,
		ProvideBloodBagService,
		ProvideComponentService,
		ProvideDistributionService,
		ProvideAccountService,
		ProvideStatisticsService,
	),
)

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewManagerFromConfig(cfg)
}

func ProvideAuthService(client *repo.Client, mgr *pasetotoken.Manager, cfg *config.Config) auth.Service {
	return auth.New(client, mgr, cfg)
}

func ProvideBloodBagService(client *repo.Client) bloodbag.Service {
	return bloodbag.New(client)
}

func ProvideComponentService(client *repo.Client) component.Service {
	return component.New(client)
}

func ProvideDistributionService(client *repo.Client) distribution.Service {
	return distribution.New(client)
}

func ProvideAccountService(client *repo.Client, cfg *config.Config) account.Service {
	return account.New(client, cfg)
}

func ProvideStatisticsService(client *repo.Client, rdb *redis.Client) statistics.Service {
	return statistics.New(client, rdb, slog.Default())
}
