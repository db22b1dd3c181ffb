package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const MemoryDB = ":memory:"

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Words    Words
	// DBPath is the SQLite results file; MemoryDB keeps results in memory.
	DBPath    string `env:"DB_PATH" envDefault:"./data/wordle.db"`
	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	NoColor   bool   `env:"NO_COLOR"`
}

type Words struct {
	AnswersFile string `env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `env:"WORDS_ALLOWED_FILE"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
