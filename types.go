package main

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/time/rate"
)

type contextKey string

// App holds the server configuration and the little state shared between requests.
type App struct {
	Config       Config
	IsProduction bool
	StartTime    time.Time

	LimiterMap   map[string]*rate.Limiter
	LimiterMutex sync.Mutex

	// RequestSchema validates JSON bodies posted to /annotate.
	RequestSchema *jsonschema.Schema

	// Annotated counts grids annotated since start.
	Annotated atomic.Int64
}

// Config is read from the YAML file and then overridden by the environment.
type Config struct {
	Port           string        `yaml:"port"`
	Env            string        `yaml:"env"`
	LogLevel       string        `yaml:"log_level"`
	RateLimitRPS   int           `yaml:"rate_limit_rps"`
	RateLimitBurst int           `yaml:"rate_limit_burst"`
	StaticCacheAge time.Duration `yaml:"static_cache_age"`
}
