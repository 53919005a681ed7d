package main

import "time"

// Request limits
const (
	MaxBodyBytes = 64 << 10 // A 99x99 board is under 10 KiB
)

// Route constants
const (
	RouteHome     = "/"
	RouteAnnotate = "/annotate"
	RouteHealth   = "/healthz"
)

// Defaults used when neither the config file nor the environment set a value
const (
	DefaultPort           = "8080"
	DefaultRateLimitRPS   = 5
	DefaultRateLimitBurst = 10
	DefaultStaticCacheAge = 5 * time.Minute
	DefaultConfigFile     = "config.yaml"
)

// Error message constants
const (
	ErrorBodyTooLarge = "Request body too large."
	ErrorEmptyBoard   = "Paste a board to annotate."
	ErrorRateLimited  = "Too many requests. Please slow down."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)

// sampleBoard pre-fills the form on the home page.
const sampleBoard = "3 5\n**...\n.....\n*...."
