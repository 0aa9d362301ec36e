package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avolosh/weather-lookup/internal/lookup"
	"github.com/avolosh/weather-lookup/internal/provider"
	"github.com/avolosh/weather-lookup/internal/server/utils"
)

// LookupService performs one weather lookup.
type LookupService interface {
	Lookup(ctx context.Context, city string) (*lookup.Result, error)
}

type WeatherHandler struct {
	service LookupService
	logger  *zap.Logger
}

func NewWeatherHandler(service LookupService, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{
		service: service,
		logger:  logger,
	}
}

func (h *WeatherHandler) GetWeather(c *gin.Context) {
	ctx := utils.GetContextFromGinContext(c)
	requestID := utils.GetRequestIDFromGinContext(c)

	reqLogger := h.logger.With(zap.String("request_id", requestID))

	var req WeatherRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		reqLogger.Warn("Invalid request parameters", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request parameters",
			Code:    "INVALID_PARAMS",
			Details: err.Error(),
		})
		return
	}

	if validationErrors := utils.ValidateStruct(req); validationErrors != nil {
		reqLogger.Warn("City validation failed", zap.String("city", req.City))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Please enter a city name",
			Code:    "INVALID_CITY",
			Details: validationErrors[0].Message,
		})
		return
	}

	reqLogger.Info("Processing weather lookup", zap.String("city", req.City))

	result, err := h.service.Lookup(ctx, req.City)
	if err != nil {
		h.respondLookupError(c, reqLogger, req.City, err)
		return
	}

	c.JSON(http.StatusOK, toWeatherResponse(result))
}

func (h *WeatherHandler) respondLookupError(c *gin.Context, logger *zap.Logger, city string, err error) {
	switch {
	case errors.Is(err, lookup.ErrEmptyCity):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Please enter a city name",
			Code:  "INVALID_CITY",
		})
	case errors.Is(err, provider.ErrCityNotFound):
		logger.Info("City not found", zap.String("city", city))
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "City not found",
			Code:  "CITY_NOT_FOUND",
		})
	default:
		logger.Error("Lookup failed", zap.String("city", city), zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "Failed to fetch weather data",
			Code:    "PROVIDER_ERROR",
			Details: err.Error(),
		})
	}
}

func toWeatherResponse(result *lookup.Result) WeatherResponse {
	response := WeatherResponse{
		City:          result.Reading.City,
		Country:       result.Reading.Country,
		Temperature:   result.Reading.Temperature,
		FeelsLike:     result.Reading.FeelsLike,
		Humidity:      result.Reading.Humidity,
		WindSpeed:     result.Reading.WindSpeed,
		Condition:     result.Reading.Condition,
		ConditionCode: result.Reading.ConditionCode,
		Description:   result.Reading.Description,
		Icon:          result.Style.Icon,
		Background: BackgroundView{
			Category: result.Style.Category,
			Color:    result.Style.Color,
		},
	}

	if result.Alert != nil {
		response.Alert = &AlertView{
			Kind:    string(result.Alert.Kind),
			Message: result.Alert.Message,
			Color:   result.Alert.Color,
		}
	}

	return response
}
