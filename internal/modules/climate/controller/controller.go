package controller

import (
	"net/http"

	"surfsup/internal/modules/climate/repository"
)

type ClimateController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type climateControllerImpl struct {
	repository repository.ClimateRepository
}

func NewClimateController(repo repository.ClimateRepository) ClimateController {
	return &climateControllerImpl{repository: repo}
}

func (c *climateControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1.0/stations", c.handleStations)
	mux.HandleFunc("GET /api/v1.0/precipitation", c.handlePrecipitation)
	mux.HandleFunc("GET /api/v1.0/tobs", c.handleTobs)
	mux.HandleFunc("GET /api/v1.0/temps/{start}", c.handleTemps)
	mux.HandleFunc("GET /api/v1.0/temps/{start}/{end}", c.handleTemps)
}
