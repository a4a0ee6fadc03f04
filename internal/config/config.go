package config

import (
	"os"
)

const (
	defaultTileURL         = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	defaultTileAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
	defaultGeminiModel     = "gemini-3-flash-preview"
)

type Config struct {
	Port            string
	LogLevel        string
	GeminiAPIKey    string
	GeminiModel     string
	SeedFile        string
	TileURL         string
	TileAttribution string
}

func New() *Config {
	return &Config{
		Port:            valueOr(os.Getenv("PORT"), "8080"),
		LogLevel:        os.Getenv("LOGLEVEL"),
		GeminiAPIKey:    os.Getenv("GEMINIAPIKEY"),
		GeminiModel:     valueOr(os.Getenv("GEMINIMODEL"), defaultGeminiModel),
		SeedFile:        os.Getenv("SEEDFILE"),
		TileURL:         valueOr(os.Getenv("TILEURL"), defaultTileURL),
		TileAttribution: valueOr(os.Getenv("TILEATTRIBUTION"), defaultTileAttribution),
	}
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
