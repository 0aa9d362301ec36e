package main

import (
	"os"

	"github.com/avolosh/weather-lookup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
