package controllers

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/boxee-legacy-api/config"
	"github.com/blogem/boxee-legacy-api/responses"
	"github.com/blogem/boxee-legacy-api/services"
)

const (
	// AppPackageFile is the Netflix package served on the dir host
	AppPackageFile = "nrd-1.1-dlink.dsm380.zip"
	// UpgradeImageFile is the OS image served on the dl host
	UpgradeImageFile = "boxee.iso"
	// UpgradeBuild is the firmware build advertised by the update check
	UpgradeBuild = "1.5.1.23735"
)

// render writes a generated body with the given status
func render(w http.ResponseWriter, status int, body responses.Body) {
	w.Header().Set("Content-Type", body.ContentType)
	w.WriteHeader(status)
	w.Write([]byte(body.Content))
}

// NotFound renders the fixed legacy 404 page
func NotFound(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusNotFound, responses.Body{ContentType: responses.ContentTypeHTML, Content: "404"})
}

// MethodNotAllowed renders the fixed legacy 405 page
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusMethodNotAllowed, responses.Body{ContentType: responses.ContentTypeHTML, Content: "405"})
}

// Controllers holds all controller instances
type Controllers struct {
	API      *APIController
	Ping     *PingController
	Download *DownloadController
	Stats    *StatsController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, cfg *config.Config, logger *zap.Logger) *Controllers {
	return &Controllers{
		API:      NewAPIController(UpgradeDescriptor(cfg), cfg.Features.UpgradeImage),
		Ping:     NewPingController(),
		Download: NewDownloadController(cfg.Assets.AppsDir, cfg.Assets.UpgradeDir, logger),
		Stats:    NewStatsController(services, logger),
	}
}

// UpgradeDescriptor points the firmware check at the dl host of the configured domain
func UpgradeDescriptor(cfg *config.Config) responses.UpdateDescriptor {
	return responses.UpdateDescriptor{
		Build: UpgradeBuild,
		URL:   fmt.Sprintf("http://dl.%s/version/dlink.dsm380/%s/%s", cfg.Server.Name, UpgradeBuild, UpgradeImageFile),
		MD5:   cfg.Assets.UpgradeMD5,
	}
}

// clock is swapped in tests
type clock func() time.Time
