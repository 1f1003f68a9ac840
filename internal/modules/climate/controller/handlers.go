package controller

import (
	"log/slog"
	"net/http"

	"surfsup/internal/modules/climate/types"
	"surfsup/internal/utils"
)

func (c *climateControllerImpl) handleStations(w http.ResponseWriter, r *http.Request) {
	stations, err := c.repository.GetStations()
	if err != nil {
		slog.Error("stations: query failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load stations")
		return
	}
	if stations == nil {
		stations = []types.Station{}
	}
	utils.WriteJSON(w, http.StatusOK, stations)
}

// handlePrecipitation serves the final year of precipitation readings,
// anchored at the latest date in the store.
func (c *climateControllerImpl) handlePrecipitation(w http.ResponseWriter, r *http.Request) {
	start, err := c.repository.FinalYearStart()
	if err != nil {
		slog.Error("precipitation: final year start failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load precipitation")
		return
	}
	if start == "" {
		utils.WriteJSON(w, http.StatusOK, []types.PrecipitationPoint{})
		return
	}
	end, err := c.repository.LastMeasurementDate()
	if err != nil {
		slog.Error("precipitation: last date failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load precipitation")
		return
	}
	points, err := c.repository.GetPrecipitation(start, end)
	if err != nil {
		slog.Error("precipitation: query failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load precipitation")
		return
	}
	if points == nil {
		points = []types.PrecipitationPoint{}
	}
	utils.WriteJSON(w, http.StatusOK, points)
}

type tobsResponse struct {
	Station string `json:"station"`
	Tobs    []int  `json:"tobs"`
}

// handleTobs serves the final year of observed temperatures for the most
// active station (the one with the most measurements).
func (c *climateControllerImpl) handleTobs(w http.ResponseWriter, r *http.Request) {
	activity, err := c.repository.GetStationActivity()
	if err != nil {
		slog.Error("tobs: station activity failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load observations")
		return
	}
	if len(activity) == 0 {
		utils.WriteJSON(w, http.StatusOK, tobsResponse{Tobs: []int{}})
		return
	}
	station := activity[0].Station

	start, err := c.repository.FinalYearStart()
	if err != nil {
		slog.Error("tobs: final year start failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load observations")
		return
	}
	end, err := c.repository.LastMeasurementDate()
	if err != nil {
		slog.Error("tobs: last date failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load observations")
		return
	}

	tobs, err := c.repository.GetTobs(station, start, end)
	if err != nil {
		slog.Error("tobs: query failed", "station", station, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load observations")
		return
	}
	if tobs == nil {
		tobs = []int{}
	}
	utils.WriteJSON(w, http.StatusOK, tobsResponse{Station: station, Tobs: tobs})
}

// handleTemps serves min/avg/max observed temperature over [start, end].
// With no end path segment the range runs through the latest measurement.
func (c *climateControllerImpl) handleTemps(w http.ResponseWriter, r *http.Request) {
	start, err := parseDateParam("start", r.PathValue("start"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	end := r.PathValue("end")
	if end == "" {
		end, err = c.repository.LastMeasurementDate()
		if err != nil {
			slog.Error("temps: last date failed", "error", err)
			utils.WriteError(w, http.StatusInternalServerError, "failed to load temperatures")
			return
		}
		if end == "" {
			utils.WriteError(w, http.StatusNotFound, "no measurements loaded")
			return
		}
	} else {
		end, err = parseDateParam("end", end)
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if start > end {
		utils.WriteError(w, http.StatusBadRequest, "'start' must be <= 'end'")
		return
	}

	stats, err := c.repository.GetTemperatureStats(start, end)
	if err != nil {
		slog.Error("temps: query failed", "start", start, "end", end, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load temperatures")
		return
	}
	if stats == nil {
		utils.WriteError(w, http.StatusNotFound, "no measurements in range")
		return
	}
	utils.WriteJSON(w, http.StatusOK, stats)
}
