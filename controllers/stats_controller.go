package controllers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/boxee-legacy-api/models"
	"github.com/blogem/boxee-legacy-api/responses"
	"github.com/blogem/boxee-legacy-api/services"
)

// StatsController serves the ledger reports on the app host
type StatsController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewStatsController creates a new stats controller
func NewStatsController(services *services.Services, logger *zap.Logger) *StatsController {
	return &StatsController{
		services: services,
		logger:   logger,
	}
}

// All handles GET /stats-all
func (c *StatsController) All(w http.ResponseWriter, r *http.Request) {
	rows, err := c.services.Tracking.ListAll(r.Context())
	if err != nil {
		c.fail(w, err)
		return
	}

	render(w, http.StatusOK, responses.LedgerDump(rows))
}

// RecentIPs handles GET /stats-recent-ips
func (c *StatsController) RecentIPs(w http.ResponseWriter, r *http.Request) {
	report, err := c.services.Tracking.RecentDistinctIPs(r.Context(), models.DefaultRecentWindow)
	if err != nil {
		c.fail(w, err)
		return
	}

	render(w, http.StatusOK, responses.RecentIPs(report))
}

func (c *StatsController) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrTrackingDisabled) {
		render(w, http.StatusBadRequest, responses.Body{ContentType: responses.ContentTypeHTML, Content: "No"})
		return
	}

	c.logger.Error("failed to build stats report", zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
