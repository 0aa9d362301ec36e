package handlers

// WeatherRequest is the single query parameter of the lookup endpoint.
type WeatherRequest struct {
	City string `form:"city" json:"city" validate:"required,city"`
}

// BackgroundView is the color category the view paints behind a reading.
type BackgroundView struct {
	Category string `json:"category"`
	Color    string `json:"color"`
}

// AlertView is the banner shown for threshold violations.
type AlertView struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Color   string `json:"color"`
}

// WeatherResponse is the view model for one successful lookup.
type WeatherResponse struct {
	City          string         `json:"city"`
	Country       string         `json:"country"`
	Temperature   float64        `json:"temperature"`
	FeelsLike     float64        `json:"feels_like"`
	Humidity      int            `json:"humidity"`
	WindSpeed     float64        `json:"wind_speed"`
	Condition     string         `json:"condition"`
	ConditionCode int            `json:"condition_code"`
	Description   string         `json:"description"`
	Icon          string         `json:"icon"`
	Background    BackgroundView `json:"background"`
	Alert         *AlertView     `json:"alert,omitempty"`
}

// ErrorResponse replaces the weather display on any failed lookup.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp,omitempty"`
}
