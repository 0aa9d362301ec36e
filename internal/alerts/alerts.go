// Package alerts decides whether a reading warrants a warning banner.
package alerts

type Kind string

const (
	KindHeat Kind = "heat"
	KindCold Kind = "cold"
	KindRain Kind = "rain"
	KindSun  Kind = "sun"
)

// Alert is one active warning banner.
type Alert struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Color   string `json:"color"`
}

// Thresholds are the configured temperature cut-offs, in provider units.
type Thresholds struct {
	HeatTemp float64
	ColdTemp float64
	SunTemp  float64
}

const (
	heatMessage = "EXTREME HEAT WARNING! Stay hydrated and limit outdoor activity."
	coldMessage = "COLD WARNING! Wear warm layers and protect exposed skin."
	rainMessage = "Heavy rain expected. Bring an umbrella and drive safely."
	sunMessage  = "High UV index expected. Wear sunscreen and a hat."
)

// Evaluate applies the alert rules in priority order and returns the first
// match, or nil when no rule fires. group is the condition group of the
// reading (see the conditions package).
func Evaluate(temp float64, group int, th Thresholds) *Alert {
	if temp >= th.HeatTemp {
		return &Alert{Kind: KindHeat, Message: heatMessage, Color: "#D32F2F"}
	}

	if temp <= th.ColdTemp {
		return &Alert{Kind: KindCold, Message: coldMessage, Color: "#1976D2"}
	}

	if group == 2 || group == 5 {
		return &Alert{Kind: KindRain, Message: rainMessage, Color: "#F57C00"}
	}

	// High UV only makes sense when it is not raining or snowing.
	if temp >= th.SunTemp && group != 2 && group != 5 && group != 6 {
		return &Alert{Kind: KindSun, Message: sunMessage, Color: "#F9A825"}
	}

	return nil
}
