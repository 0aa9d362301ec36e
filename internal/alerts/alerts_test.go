package alerts

import "testing"

var testThresholds = Thresholds{
	HeatTemp: 35.0,
	ColdTemp: 5.0,
	SunTemp:  28.0,
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		temp  float64
		group int
		want  Kind
	}{
		{"extreme heat", 36.5, 8, KindHeat},
		{"heat at threshold", 35.0, 8, KindHeat},
		{"heat beats rain", 40.0, 5, KindHeat},
		{"extreme cold", -3.0, 6, KindCold},
		{"cold at threshold", 5.0, 8, KindCold},
		{"thunderstorm", 20.0, 2, KindRain},
		{"rain", 15.0, 5, KindRain},
		{"high uv clear", 30.0, 8, KindSun},
		{"uv at threshold", 28.0, 8, KindSun},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := Evaluate(tt.temp, tt.group, testThresholds)
			if alert == nil {
				t.Fatalf("Evaluate(%v, %d) = nil, want %s alert", tt.temp, tt.group, tt.want)
			}
			if alert.Kind != tt.want {
				t.Errorf("Evaluate(%v, %d) kind = %s, want %s", tt.temp, tt.group, alert.Kind, tt.want)
			}
			if alert.Message == "" || alert.Color == "" {
				t.Errorf("Evaluate(%v, %d) returned incomplete alert %+v", tt.temp, tt.group, alert)
			}
		})
	}
}

func TestEvaluateNoAlert(t *testing.T) {
	tests := []struct {
		name  string
		temp  float64
		group int
	}{
		{"mild and cloudy", 20.0, 8},
		{"mild drizzle", 15.0, 3},
		{"warm snow is not uv", 29.0, 6},
		{"just above cold", 5.1, 8},
		{"just below uv", 27.9, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if alert := Evaluate(tt.temp, tt.group, testThresholds); alert != nil {
				t.Errorf("Evaluate(%v, %d) = %+v, want nil", tt.temp, tt.group, alert)
			}
		})
	}
}

func TestEvaluateUsesConfiguredThresholds(t *testing.T) {
	custom := Thresholds{HeatTemp: 30.0, ColdTemp: 0.0, SunTemp: 25.0}

	if alert := Evaluate(31.0, 8, custom); alert == nil || alert.Kind != KindHeat {
		t.Errorf("Evaluate(31, 8) with heat threshold 30 = %+v, want heat", alert)
	}
	if alert := Evaluate(2.0, 8, custom); alert != nil {
		t.Errorf("Evaluate(2, 8) with cold threshold 0 = %+v, want nil", alert)
	}
}
