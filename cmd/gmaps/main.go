package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/parkerdavis/gmaps"
)

func init() {
	// Keys live in local/.env in the original project layout; a top-level
	// .env works too. Missing files are fine, the environment wins.
	for _, envFile := range []string{".env", "local/.env"} {
		_ = godotenv.Load(envFile)
	}
}

// mapsClient builds the Maps Platform client from the environment.
func mapsClient() (*gmaps.Client, error) {
	return gmaps.NewClient(os.Getenv(gmaps.EnvAPIKey))
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}
