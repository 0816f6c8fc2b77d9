package controllers

import (
	"net/http"
	"time"

	"github.com/blogem/boxee-legacy-api/responses"
)

// APIController serves the app and api hosts
type APIController struct {
	update       responses.UpdateDescriptor
	offerUpgrade bool
	now          clock
}

// NewAPIController creates a new API controller. With offerUpgrade the firmware
// check advertises update instead of echoing the client's version.
func NewAPIController(update responses.UpdateDescriptor, offerUpgrade bool) *APIController {
	return &APIController{
		update:       update,
		offerUpgrade: offerUpgrade,
		now:          time.Now,
	}
}

// Status handles GET /
func (c *APIController) Status(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, responses.Status(c.now()))
}

// Login handles GET /api/login
func (c *APIController) Login(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, responses.Login())
}

// Featured handles GET /api/get_featured
func (c *APIController) Featured(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, responses.Featured(c.now()))
}

// FirmwareCheck handles GET /chkupd/dlink.dsm380/... and /ping/dlink.dsm380/...
func (c *APIController) FirmwareCheck(w http.ResponseWriter, r *http.Request) {
	version := r.URL.Query().Get("p")
	if c.offerUpgrade {
		render(w, http.StatusOK, responses.FirmwareUpdate(version, c.update, c.now()))
		return
	}
	render(w, http.StatusOK, responses.FirmwareCheck(version, c.now()))
}

// AppIndex handles GET /appindex/dlink.dsm380/1.5.1
func (c *APIController) AppIndex(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, responses.AppIndex())
}
