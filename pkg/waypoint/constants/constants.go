// Package constants defines shared constants and configuration values
// used throughout waypoint.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Environment variables read by waypoint.
const (
	DeepLinkEnvVar      = "WAYPOINT_DEEP_LINK"      // URL to open on startup instead of the default screen
	DomainEnvVar        = "WAYPOINT_DOMAIN"         // Overrides the configured URL domain
	DefaultScreenEnvVar = "WAYPOINT_DEFAULT_SCREEN" // Overrides the configured default screen
	LogLevelEnvVar      = "WAYPOINT_LOG_LEVEL"      // Overrides the configured log level
)

// DefaultDomain is the URL domain used when none is configured.
const DefaultDomain = "domain://"

// Default timing and input constants.
const (
	DefaultFadeSteps    = 12                     // Alpha updates per fade
	DefaultBackDebounce = 250 * time.Millisecond // Minimum gap between hardware back presses
	DefaultBackKeyCode  = 158                    // KEY_BACK in linux/input-event-codes.h
)
