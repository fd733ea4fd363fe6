// Package config reads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Getenv returns the value of key, or fallback when unset or empty.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Atoi returns key parsed as an int, or fallback when unset or malformed.
func Atoi(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// DurationMS reads key as a millisecond count.
func DurationMS(key string, fallbackMS int) time.Duration {
	return time.Duration(Atoi(key, fallbackMS)) * time.Millisecond
}
