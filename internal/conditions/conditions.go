// Package conditions maps OpenWeatherMap condition codes to display
// styling. Codes are grouped by their hundreds digit (2xx thunderstorm,
// 3xx drizzle, 5xx rain, 6xx snow, 7xx atmosphere, 8xx clouds) with the
// single exact code 800 meaning clear sky.
package conditions

const clearSkyCode = 800

// Style is the display mapping for one condition category.
type Style struct {
	Icon     string `json:"icon"`
	Category string `json:"category"`
	Color    string `json:"color"`
	Severe   bool   `json:"severe"`
}

var groupStyles = map[int]Style{
	2: {Icon: "⛈️", Category: "storm", Color: "#4527A0", Severe: true},
	3: {Icon: "🌧️", Category: "drizzle", Color: "#455A64"},
	5: {Icon: "☔", Category: "rain", Color: "#3949AB", Severe: true},
	6: {Icon: "❄️", Category: "snow", Color: "#B3E5FC"},
	7: {Icon: "🌫️", Category: "mist", Color: "#78909C"},
	8: {Icon: "☁️", Category: "clouds", Color: "#90A4AE"},
}

var clearStyle = Style{Icon: "☀️", Category: "clear", Color: "#FFEE58"}

var defaultStyle = Style{Icon: "❓", Category: "default", Color: "#FFFFFF"}

// Group returns the condition group for a provider code.
func Group(code int) int {
	return code / 100
}

// Categorize returns the style for a provider condition code. The result
// depends on nothing but the code.
func Categorize(code int) Style {
	if code == clearSkyCode {
		return clearStyle
	}
	if style, ok := groupStyles[Group(code)]; ok {
		return style
	}
	return defaultStyle
}
