package controllers

import (
	"net/http"
	"time"

	"github.com/blogem/boxee-legacy-api/responses"
)

// PingController serves the 0-9.ping hosts
type PingController struct {
	now clock
}

func NewPingController() *PingController {
	return &PingController{now: time.Now}
}

// Pong handles GET /
func (c *PingController) Pong(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, responses.Pong())
}

// DevicePing handles GET /dlink.dsm380/
func (c *PingController) DevicePing(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, responses.DevicePing(r.URL.Query().Get("p"), c.now()))
}
