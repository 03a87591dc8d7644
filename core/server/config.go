package server

import "strconv"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen. PORT overrides SERVER_PORT.
	Port string `mapstructure:"port" default:"3000"`
	// ApiKey protects write requests when set. Empty disables authentication.
	ApiKey string `mapstructure:"api_key" default:""`
	// PublicDir serves pages from disk instead of the embedded copies.
	PublicDir string `mapstructure:"public_dir" default:""`
	// BodyLimit is the largest accepted request body in bytes. Larger bodies get 413.
	BodyLimit int `mapstructure:"body_limit" default:"4194304"`
}

// DefaultPort is used when no port is configured.
const DefaultPort = "3000"

// IsValidPort checks if the configured port is a usable TCP port number.
func (c Config) IsValidPort() bool {
	p, err := strconv.Atoi(c.Port)
	if err != nil {
		return false
	}
	return p > 0 && p <= 65535
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	if c.Port == "" {
		return ":" + DefaultPort
	}
	return ":" + c.Port
}

// BaseURL returns the local URL clients use to reach the server.
func (c Config) BaseURL() string {
	return "http://localhost" + c.Addr()
}
