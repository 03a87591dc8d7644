// Package config provides configuration management for text-share.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (via godotenv). Defaults live in the `default` struct
// tags of each section and are registered by reflection.
//
// # Configuration Structure
//
//   - Server: listening port, optional API key, optional public directory
//   - Log: logging level and format
//
// Keys map to environment variables by upper-casing and replacing dots with
// underscores (server.api_key -> SERVER_API_KEY). PORT is honored on top of
// SERVER_PORT and wins when both are set.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
