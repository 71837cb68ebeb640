// Package config manages user-level settings stored at ~/.agentstack/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default framework used when initializing new projects.
package config
