package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort         string
	LookbackDays     int    // how far the ledger rollforward searches for a carry-in
	BackfillIdleDays int    // days without stock activity before a zero report is synthesized
	BackfillAt       string // local wall-clock time (HH:MM) of the daily backfill run
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:         getEnv("PORT", "3000"),
		LookbackDays:     getEnvInt("LOOKBACK_DAYS", 7),
		BackfillIdleDays: getEnvInt("BACKFILL_IDLE_DAYS", 5),
		BackfillAt:       getEnv("BACKFILL_AT", "23:55"),
	}

	if cfg.LookbackDays < 1 {
		log.Fatal("[FATAL] LOOKBACK_DAYS must be at least 1")
	}
	// The backfill has to fire inside the lookback window, otherwise an idle
	// shop's carry-in silently resets to zero between runs.
	if cfg.BackfillIdleDays < 1 || cfg.BackfillIdleDays >= cfg.LookbackDays {
		log.Fatal("[FATAL] BACKFILL_IDLE_DAYS must be between 1 and LOOKBACK_DAYS-1")
	}
	if _, err := time.Parse("15:04", cfg.BackfillAt); err != nil {
		log.Fatalf("[FATAL] BACKFILL_AT must be HH:MM, got %q", cfg.BackfillAt)
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("[FATAL] %s must be an integer, got %q", key, v)
	}
	return n
}
