package config

import (
	"fmt"
	"os"

	"github.com/reviewlens/reviewlens/pkg/formatting"
	"github.com/reviewlens/reviewlens/pkg/middleware"
	"github.com/reviewlens/reviewlens/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "REVIEWLENS_CORS_ENABLED",
	Origins:          "REVIEWLENS_CORS_ORIGINS",
	AllowedMethods:   "REVIEWLENS_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "REVIEWLENS_CORS_ALLOWED_HEADERS",
	AllowCredentials: "REVIEWLENS_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "REVIEWLENS_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "REVIEWLENS_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "REVIEWLENS_PAGINATION_MAX_PAGE_SIZE",
}

// APIConfig holds API routing, CORS, and pagination settings.
type APIConfig struct {
	BasePath       string                `toml:"base_path"`
	MaxRequestSize string                `toml:"max_request_size"`
	CORS           middleware.CORSConfig `toml:"cors"`
	Pagination     pagination.Config     `toml:"pagination"`
}

func (c *APIConfig) MaxRequestSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxRequestSize)
	if err != nil {
		return 1024 * 1024 // 1MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and pagination configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxRequestSize != "" {
		c.MaxRequestSize = overlay.MaxRequestSize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxRequestSize == "" {
		c.MaxRequestSize = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("REVIEWLENS_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("REVIEWLENS_API_MAX_REQUEST_SIZE"); v != "" {
		c.MaxRequestSize = v
	}
}
