package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	DataDir     string
	GamesDBPath string
	BookPath    string
	ProfilePath string
}

func FromEnv() Config {
	dataDir := getenv("JANUS_DATA_DIR", "./data")
	gamesDBPath := getenv("JANUS_GAMES_DB_PATH", filepath.Join(dataDir, "games.sqlite"))
	bookPath := getenv("JANUS_BOOK_PATH", filepath.Join(dataDir, "book.json"))
	profilePath := getenv("JANUS_PROFILE_PATH", filepath.Join(dataDir, "profile.json"))

	return Config{
		DataDir:     dataDir,
		GamesDBPath: gamesDBPath,
		BookPath:    bookPath,
		ProfilePath: profilePath,
	}
}

func getenv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
