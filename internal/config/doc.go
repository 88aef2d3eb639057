// Package config provides centralized configuration management for the
// Skylark analytics service. It layers environment variables over an
// optional YAML file over built-in defaults, and validates the result
// at load time.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. config.yaml / configs/config.yaml (or SKYLARK_CONFIG_FILE)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern SKYLARK_* for namespacing:
//
//	SKYLARK_SERVER_PORT=8080
//	SKYLARK_MONDAY_API_TOKEN=eyJhb...
//	SKYLARK_MONDAY_DEALS_BOARD_ID=1234567890
//	SKYLARK_MONDAY_WORK_ORDERS_BOARD_ID=9876543210
//	SKYLARK_LOGGING_LEVEL=info
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
