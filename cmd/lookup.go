package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avolosh/weather-lookup/internal/config"
	"github.com/avolosh/weather-lookup/internal/lookup"
	"github.com/avolosh/weather-lookup/internal/provider"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <city>",
	Short: "Look up current weather for a city",
	Long:  `Perform a single weather lookup and print the reading, its category and any active alert.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()

	client := provider.NewBreakerClient("openweathermap",
		provider.NewOpenWeatherClient(cfg.Provider, nil, log.Logger, tele))
	svc := lookup.NewService(cfg, client, log.Logger, tele)

	res, err := svc.Lookup(cmd.Context(), args[0])
	if err != nil {
		switch {
		case errors.Is(err, lookup.ErrEmptyCity):
			return errors.New("city must not be empty")
		case errors.Is(err, provider.ErrCityNotFound):
			return fmt.Errorf("city %q not found", strings.TrimSpace(args[0]))
		default:
			return fmt.Errorf("weather lookup failed: %w", err)
		}
	}

	r := res.Reading
	fmt.Printf("%s  %s, %s\n", res.Style.Icon, r.City, r.Country)
	fmt.Printf("%s\n", r.Description)
	fmt.Printf("Temperature: %.1f°C (feels like %.1f°C)\n", r.Temperature, r.FeelsLike)
	fmt.Printf("Humidity:    %d%%\n", r.Humidity)
	fmt.Printf("Wind:        %.1f m/s\n", r.WindSpeed)
	fmt.Printf("Background:  %s\n", res.Style.Category)
	if res.Alert != nil {
		fmt.Printf("\nALERT [%s]: %s\n", res.Alert.Kind, res.Alert.Message)
	}

	return nil
}
