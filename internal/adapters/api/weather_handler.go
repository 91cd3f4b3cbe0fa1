package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skycast.app/internal/ports"
	"skycast.app/pkg/errors"
)

// coordinateQuery binds lat/lon. Pointers let required accept 0.
type coordinateQuery struct {
	Lat *float64 `form:"lat" binding:"required,latitude"`
	Lon *float64 `form:"lon" binding:"required,longitude"`
}

type citySearchQuery struct {
	Query string `form:"q" binding:"required,notblank,max=100"`
}

func (q coordinateQuery) coordinate() ports.Coordinate {
	return ports.Coordinate{Latitude: *q.Lat, Longitude: *q.Lon}
}

func (s *HTTPServerAdapter) bindCoordinate(c *gin.Context) (ports.Coordinate, bool) {
	var query coordinateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("lat and lon are required: lat in [-90, 90], lon in [-180, 180]"))
		return ports.Coordinate{}, false
	}
	return query.coordinate(), true
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	coord, ok := s.bindCoordinate(c)
	if !ok {
		return
	}

	info, err := s.weatherUseCase.GetCurrentWeather(c.Request.Context(), coord)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// getForecast handles GET /api/forecast requests. An unavailable forecast is an empty list.
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	coord, ok := s.bindCoordinate(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, s.weatherUseCase.GetDailyForecast(c.Request.Context(), coord))
}

// getOverview handles GET /api/overview requests
func (s *HTTPServerAdapter) getOverview(c *gin.Context) {
	coord, ok := s.bindCoordinate(c)
	if !ok {
		return
	}

	overview, err := s.weatherUseCase.GetOverview(c.Request.Context(), coord)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// searchCities handles GET /api/cities requests
func (s *HTTPServerAdapter) searchCities(c *gin.Context) {
	var query citySearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("q parameter is required"))
		return
	}

	c.JSON(http.StatusOK, s.weatherUseCase.SearchCities(c.Request.Context(), query.Query))
}
