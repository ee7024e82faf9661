// Package config loads builder configuration and form definition documents.
// Both accept JSON or YAML.
package config
