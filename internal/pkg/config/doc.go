// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file with viper and can be overridden through
// PORTFOLIO_-prefixed environment variables. Every settings struct validates
// itself before the application starts using it.
package config
