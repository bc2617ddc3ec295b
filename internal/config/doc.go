// Package config provides configuration management for sjcli.
// It loads settings from multiple sources and exposes a validated,
// type-safe configuration struct to the rest of the application.
//
// # Configuration Sources
//
// Configuration is loaded in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. An optional YAML file passed with -config
//	3. Built-in defaults (lowest priority)
//
// # Environment Variables
//
// All environment variables use the SJ_* namespace:
//
//	SJ_LOGGING_LEVEL=debug
//	SJ_LOGGING_FORMAT=text
//	SJ_LOGGING_OUTPUT=both
//	SJ_LOGGING_FILE_PATH=logs/sjcli.log
//	SJ_REPORT_OUTPUT_DIR=/data/reports
package config
