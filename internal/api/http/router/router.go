package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/hemobank/hemobank_backend/config"
	"github.com/hemobank/hemobank_backend/internal/api/http/handler"
	"github.com/hemobank/hemobank_backend/internal/api/http/middleware"
	"github.com/hemobank/hemobank_backend/internal/service/account"
	"github.com/hemobank/hemobank_backend/internal/service/auth"
	"github.com/hemobank/hemobank_backend/internal/service/bloodbag"
	"github.com/hemobank/hemobank_backend/internal/service/component"
	"github.com/hemobank/hemobank_backend/internal/service/distribution"
	"github.com/hemobank/hemobank_backend/internal/service/statistics"
	pasetotoken "github.com/hemobank/hemobank_backend/pkg/paseto"
	"github.com/hemobank/hemobank_backend/pkg/reqctx"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	AuthSvc         auth.Service
	BloodBagSvc     bloodbag.Service
	ComponentSvc    component.Service
	DistributionSvc distribution.Service
	AccountSvc      account.Service
	StatisticsSvc   statistics.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr)
	biologistOnly := middleware.RequireRole(reqctx.RoleBiologist)
	chefOnly := middleware.RequireRole(reqctx.RoleChefService)

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	bagH := handler.NewBloodBagHandler(r.p.BloodBagSvc)
	componentH := handler.NewComponentHandler(r.p.ComponentSvc)
	distributionH := handler.NewDistributionHandler(r.p.DistributionSvc)
	accountH := handler.NewAccountHandler(r.p.AccountSvc)
	statisticsH := handler.NewStatisticsHandler(r.p.StatisticsSvc)

	api := app.Group("/api/v1")

	r.registerAuthRoutes(api, authH)
	r.registerBloodBagRoutes(api, bagH, authRequired, biologistOnly)
	r.registerComponentRoutes(api, componentH, authRequired, biologistOnly)
	r.registerDistributionRoutes(api, distributionH, authRequired, biologistOnly)
	r.registerUserRoutes(api, accountH, authRequired, chefOnly)
	r.registerStatisticsRoutes(api, statisticsH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Metrics.Enabled {
		path := r.p.Cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
