package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// demoMap is used when GRIDPATH_MAP is unset.
const demoMap = "S.........../" +
	"....#######./" +
	"..........#./" +
	"#######...#./" +
	"..........#./" +
	"...########./" +
	"...........G"

// Config holds the collaborator's settings.
type Config struct {
	Rows          []string      // ASCII map, one string per row
	Step          int           // cell size in coordinate units
	Tick          time.Duration // delay between applied actions
	Frames        int           // render every Frames applied actions
	MaxIterations int           // search iteration cap, 0 means none
}

// loadConfig reads a .env file if one exists and then the environment.
func loadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return parseConfig(os.LookupEnv)
}

// parseConfig builds a Config from lookup, applying defaults for unset keys.
func parseConfig(lookup func(string) (string, bool)) (Config, error) {
	var (
		cfg Config
		err error
	)
	cfg.Rows = strings.Split(getEnvWithDefault(lookup, "GRIDPATH_MAP", demoMap), "/")
	if cfg.Step, err = getEnvAsInt(lookup, "GRIDPATH_STEP", 20); err != nil {
		return Config{}, err
	}
	if cfg.Frames, err = getEnvAsInt(lookup, "GRIDPATH_FRAMES", 1); err != nil {
		return Config{}, err
	}
	if cfg.MaxIterations, err = getEnvAsInt(lookup, "GRIDPATH_MAX_ITER", 0); err != nil {
		return Config{}, err
	}
	tick := getEnvWithDefault(lookup, "GRIDPATH_TICK", "15ms")
	if cfg.Tick, err = time.ParseDuration(tick); err != nil {
		return Config{}, fmt.Errorf("GRIDPATH_TICK must be a duration: %w", err)
	}

	if cfg.Frames < 1 {
		return Config{}, fmt.Errorf("GRIDPATH_FRAMES must be at least 1, got %d", cfg.Frames)
	}
	if cfg.MaxIterations < 0 {
		return Config{}, fmt.Errorf("GRIDPATH_MAX_ITER must not be negative, got %d", cfg.MaxIterations)
	}
	return cfg, nil
}

// getEnvWithDefault returns the value of key or def if it is not set.
func getEnvWithDefault(lookup func(string) (string, bool), key, def string) string {
	if v, ok := lookup(key); ok {
		return v
	}
	return def
}

// getEnvAsInt returns key parsed as an integer, or def if it is not set.
func getEnvAsInt(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
