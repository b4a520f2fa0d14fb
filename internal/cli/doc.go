// Package cli provides command-line interface setup and configuration
// for the predtrans application. It handles flag parsing, command
// creation, and configuration management using cobra and viper, and
// resolves the merged flag, config file and environment values into
// Settings.
package cli
