package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/blogem/boxee-legacy-api/config"
	"github.com/blogem/boxee-legacy-api/controllers"
	appmiddleware "github.com/blogem/boxee-legacy-api/middleware"
	"github.com/blogem/boxee-legacy-api/services"
)

// NewRouter builds the whole route table. Optional routes follow cfg.Features.
func NewRouter(cfg *config.Config, ctrl *controllers.Controllers, srvs *services.Services, logger *zap.Logger) http.Handler {
	trusted := appmiddleware.NewTrustedProxies(cfg.Proxy.Trusted)
	track := appmiddleware.TrackRequest(srvs.Tracking, trusted, logger)

	hosts := NewHostRouter(cfg.Server.Name, unknownHost(logger))

	// app additionally carries the stats routes
	hosts.Handle("app", apiRoutes(cfg, ctrl, track, logger, "app", true))
	hosts.Handle("api", apiRoutes(cfg, ctrl, track, logger, "api", false))
	hosts.HandleFunc("ping", IsPingHost, pingRoutes(ctrl, track, logger))

	hosts.Handle("dir", newGroup(logger, "dir", func(r chi.Router) {
		r.With(track).Get("/apps/download/"+controllers.AppPackageFile+"/", ctrl.Download.AppPackage)
	}))

	if cfg.Features.UpgradeImage {
		hosts.Handle("dl", newGroup(logger, "dl", func(r chi.Router) {
			r.With(track).Get("/version/dlink.dsm380/"+controllers.UpgradeBuild+"/"+controllers.UpgradeImageFile, ctrl.Download.UpgradeImage)
		}))
	}

	return chi.Chain(
		middleware.RequestID,
		appmiddleware.ResolveClient(trusted),
		middleware.Recoverer,
	).Handler(hosts)
}

// newGroup creates the router for one host group with the shared middleware stack
func newGroup(logger *zap.Logger, name string, routes func(r chi.Router)) http.Handler {
	r := chi.NewRouter()

	r.Use(appmiddleware.RequestLogger(logger, name))
	r.Use(middleware.GetHead)

	r.NotFound(controllers.NotFound)
	r.MethodNotAllowed(controllers.MethodNotAllowed)

	routes(r)
	return r
}

func apiRoutes(cfg *config.Config, ctrl *controllers.Controllers, track func(http.Handler) http.Handler, logger *zap.Logger, name string, withStats bool) http.Handler {
	return newGroup(logger, name, func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))
			r.Use(track)

			r.Get("/", ctrl.API.Status)
			r.Get("/api/login", ctrl.API.Login)
			r.Get("/api/get_featured", ctrl.API.Featured)
			r.Get("/chkupd/dlink.dsm380/{one}/{two}/{three}/{four}/{five}/{six}", ctrl.API.FirmwareCheck)
			r.Get("/ping/dlink.dsm380/{one}/{two}/{three}", ctrl.API.FirmwareCheck)
			r.Get("/appindex/dlink.dsm380/1.5.1", ctrl.API.AppIndex)
		})

		if withStats && cfg.Features.StatsRoutes {
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireStatsAuth(cfg.Stats.User, cfg.Stats.Password))

				r.Get("/stats-all", ctrl.Stats.All)
				r.Get("/stats-recent-ips", ctrl.Stats.RecentIPs)
			})
		}
	})
}

func pingRoutes(ctrl *controllers.Controllers, track func(http.Handler) http.Handler, logger *zap.Logger) http.Handler {
	return newGroup(logger, "ping", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))
			r.Use(track)

			r.Get("/", ctrl.Ping.Pong)
			r.Get("/dlink.dsm380/", ctrl.Ping.DevicePing)
		})
	})
}

// unknownHost answers hosts outside every group
func unknownHost(logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("unknown host",
			zap.String("host", r.Host),
			zap.String("path", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
		)
		controllers.NotFound(w, r)
	})
}
