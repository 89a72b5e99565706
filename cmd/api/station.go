package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/store"
	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/types"
	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/weather"
)

// errorResponse is the JSON error body for every failure in the
// endpoint's taxonomy.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleGetStations godoc
// @Summary List weather stations
// @Description The fixed station directory delivered to the map page at load
// @Tags stations
// @Produce json
// @Success 200 {array} types.Station
// @Failure 500 {object} errorResponse
// @Router /stations [get]
func (app *App) handleGetStations(c *gin.Context) {
	stations, err := app.stations.GetStations()
	if err != nil {
		app.logger.Error("failed to list stations", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{
			Code:    "stations_error",
			Message: "Could not list weather stations.",
		})
		return
	}
	c.JSON(http.StatusOK, stations)
}

// handleGetWeatherStation godoc
// @Summary Get weather for a station
// @Description Resolve a station by id and return its identity plus the cached (refreshing when stale) weather record with both metric and imperial blocks
// @Tags stations
// @Produce json
// @Param id path int true "Station ID" minimum(1)
// @Param units query string false "Display units" Enums(metric, imperial) default(metric)
// @Param X-WNCC-Nonce header string true "Anti-forgery token"
// @Success 200 {object} weather.StationPayload
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /weather-station/{id} [get]
func (app *App) handleGetWeatherStation(c *gin.Context) {
	// Validate the station id before any lookup
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "invalid_station_id",
			Message: "Invalid station ID.",
		})
		return
	}

	// The units parameter informs only which sub-object the client
	// displays; the server always computes and caches both.
	_ = types.ParseUnits(c.Query("units"))

	station, err := app.stations.GetStation(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{
				Code:    "station_not_found",
				Message: "Weather station not found.",
			})
			return
		}
		app.logger.Error("failed to look up station", "station_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{
			Code:    "weather_data_error",
			Message: "Could not retrieve weather data.",
		})
		return
	}

	payload := weather.StationPayload{
		ID:    station.ID,
		Title: station.Title,
	}

	// A station without coordinates is a valid outcome: identity only,
	// no weather key.
	if !station.HasCoordinates() {
		c.JSON(http.StatusOK, payload)
		return
	}

	rec, err := app.weatherService.GetStationWeather(*station)
	if err != nil {
		app.logger.Error("failed to get station weather", "station_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{
			Code:    "weather_data_error",
			Message: "Could not retrieve weather data.",
		})
		return
	}

	payload.Weather = rec
	c.JSON(http.StatusOK, payload)
}
