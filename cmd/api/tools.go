package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"weather-mcp/internal/tools"
)

// WeatherQueryInput defines the query parameters shared by the weather endpoints
type WeatherQueryInput struct {
	Latitude     *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude    *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
	LocationName string   `form:"location_name"`                // Display name for the location
}

func (in WeatherQueryInput) arguments() map[string]any {
	args := map[string]any{
		tools.ArgLatitude:  *in.Latitude,
		tools.ArgLongitude: *in.Longitude,
	}
	if in.LocationName != "" {
		args[tools.ArgLocationName] = in.LocationName
	}
	return args
}

// handleListTools godoc
// @Summary List tools
// @Description List every tool with its parameters
// @Tags tools
// @Produce json
// @Success 200 {array} tools.Tool
// @Router /api/v1/tools [get]
func (app *App) handleListTools(c *gin.Context) {
	c.JSON(http.StatusOK, app.registry.Tools())
}

// handleGetCurrentWeather godoc
// @Summary Get current weather
// @Description Current conditions for a latitude and longitude
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" example(35.6762)
// @Param longitude query number true "Longitude in decimal degrees" example(139.6503)
// @Param location_name query string false "Display name for the location"
// @Success 200 {object} weather.CurrentReport
// @Failure 400 {object} tools.ErrorResult
// @Failure 502 {object} tools.ErrorResult
// @Router /api/v1/weather/current [get]
func (app *App) handleGetCurrentWeather(c *gin.Context) {
	app.callWeatherTool(c, tools.ToolCurrentWeather)
}

// handleGetWeeklyForecast godoc
// @Summary Get weekly forecast
// @Description Daily forecast for the next seven days
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" example(35.6762)
// @Param longitude query number true "Longitude in decimal degrees" example(139.6503)
// @Param location_name query string false "Display name for the location"
// @Success 200 {object} weather.WeeklyReport
// @Failure 400 {object} tools.ErrorResult
// @Failure 502 {object} tools.ErrorResult
// @Router /api/v1/weather/weekly [get]
func (app *App) handleGetWeeklyForecast(c *gin.Context) {
	app.callWeatherTool(c, tools.ToolWeeklyForecast)
}

// handleGetTodayHourlyWeather godoc
// @Summary Get today's hourly weather
// @Description Hourly forecast for the current local date
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" example(35.6762)
// @Param longitude query number true "Longitude in decimal degrees" example(139.6503)
// @Param location_name query string false "Display name for the location"
// @Success 200 {object} weather.HourlyReport
// @Failure 400 {object} tools.ErrorResult
// @Failure 502 {object} tools.ErrorResult
// @Router /api/v1/weather/hourly [get]
func (app *App) handleGetTodayHourlyWeather(c *gin.Context) {
	app.callWeatherTool(c, tools.ToolTodayHourlyWeather)
}

func (app *App) callWeatherTool(c *gin.Context, name string) {
	var input WeatherQueryInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, tools.ErrorResult{Error: err.Error()})
		return
	}

	result, err := app.registry.Call(c.Request.Context(), name, input.arguments())
	if err != nil {
		if errors.Is(err, tools.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, tools.ErrorResult{Error: err.Error()})
			return
		}
		app.logger.Error("tool call failed", "tool", name, "error", err)
		c.JSON(http.StatusInternalServerError, tools.ErrorResult{Error: "failed to run " + name})
		return
	}

	if failure, failed := result.(tools.ErrorResult); failed {
		c.JSON(http.StatusBadGateway, failure)
		return
	}
	c.JSON(http.StatusOK, result)
}
