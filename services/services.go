package services

import (
	"github.com/blogem/boxee-legacy-api/repositories"
)

// Services holds all service instances
type Services struct {
	Tracking TrackingService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, trackingEnabled bool) *Services {
	return &Services{
		Tracking: NewTrackingService(repos.Requests, trackingEnabled),
	}
}
