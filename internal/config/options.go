package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ytget/yt-remote/internal/model"
)

// Default values
const (
	DefaultServerURL          = "http://localhost:5000"
	DefaultPollInterval       = 1000 * time.Millisecond
	DefaultRequestTimeout     = 30 * time.Second
	DefaultLanguage           = "system"
	DefaultStrictOptionFields = false
)

// Environment variables read on top of stored settings
const (
	EnvServerURL    = "YT_REMOTE_SERVER_URL"
	EnvPollInterval = "YT_REMOTE_POLL_INTERVAL"
	EnvStrictFields = "YT_REMOTE_STRICT_FIELDS"
)

// Options is the runtime configuration shared by both front-ends
type Options struct {
	ServerURL      string
	PollInterval   time.Duration
	RequestTimeout time.Duration
	Language       string
	Formats        model.FormatOptions
}

// DefaultOptions returns the built-in configuration
func DefaultOptions() Options {
	return Options{
		ServerURL:      DefaultServerURL,
		PollInterval:   DefaultPollInterval,
		RequestTimeout: DefaultRequestTimeout,
		Language:       DefaultLanguage,
		Formats:        model.DefaultFormatOptions(),
	}
}

// LoadDotEnv loads variables from the given files, or .env when none are
// given. A missing file is not an error.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			log.Printf("Failed to load %s: %v", f, err)
		}
	}
}

// ApplyEnv overrides opts with the environment. Invalid values are logged
// and ignored.
func ApplyEnv(opts Options) Options {
	if v, ok := os.LookupEnv(EnvServerURL); ok && v != "" {
		opts.ServerURL = v
	}

	if v, ok := os.LookupEnv(EnvPollInterval); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("Ignoring %s=%q: %v", EnvPollInterval, v, err)
		} else {
			opts.PollInterval = ClampPollInterval(d)
		}
	}

	if v, ok := os.LookupEnv(EnvStrictFields); ok && v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("Ignoring %s=%q: %v", EnvStrictFields, v, err)
		} else {
			opts.Formats.StrictOptionFields = strict
		}
	}

	return opts
}
