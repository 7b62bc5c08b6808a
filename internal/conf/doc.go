// Package conf loads application settings from an optional YAML config
// file and environment variables, falling back to built-in defaults.
package conf
