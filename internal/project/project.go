// Package project reads and writes the agentstack.json file that marks a
// directory as an agentstack project and records which framework and CLI
// version it was created with.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// FileName is the project marker file at the project root.
const FileName = "agentstack.json"

// ErrNotFound is returned when no project marker exists at or above the
// starting directory.
var ErrNotFound = errors.New("not an agentstack project (agentstack.json not found)")

// Config is the persisted project metadata.
type Config struct {
	Name             string   `json:"name"`
	Version          string   `json:"version"`
	Framework        string   `json:"framework"`
	AgentStackVersion string  `json:"agentstack_version"`
	Template         string   `json:"template,omitempty"`
	TemplateVersion  string   `json:"template_version,omitempty"`
	Tools            []string `json:"tools"`
}

// Load reads the project config from dir.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &c, nil
}

// Save writes the project config to dir with stable formatting.
func (c *Config) Save(dir string) error {
	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return fmt.Errorf("serializing project config: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Find walks up from start looking for the project root.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// HasTool reports whether a registry tool is recorded as installed.
func (c *Config) HasTool(name string) bool {
	for _, t := range c.Tools {
		if t == name {
			return true
		}
	}
	return false
}

// AddTool records a registry tool as installed. Idempotent.
func (c *Config) AddTool(name string) {
	if !c.HasTool(name) {
		c.Tools = append(c.Tools, name)
	}
}

// RemoveTool removes a registry tool from the installed list. No-op when
// absent.
func (c *Config) RemoveTool(name string) {
	kept := c.Tools[:0]
	for _, t := range c.Tools {
		if t != name {
			kept = append(kept, t)
		}
	}
	c.Tools = kept
}

// CheckCompatible verifies that the project was created by a CLI of the same
// major version. Dev builds skip the check.
func (c *Config) CheckCompatible(cliVersion string) error {
	if cliVersion == "dev" || c.AgentStackVersion == "" {
		return nil
	}

	cv, err := semver.NewVersion(strings.TrimPrefix(cliVersion, "v"))
	if err != nil {
		return fmt.Errorf("parsing CLI version %q: %w", cliVersion, err)
	}
	pv, err := semver.NewVersion(strings.TrimPrefix(c.AgentStackVersion, "v"))
	if err != nil {
		return fmt.Errorf("parsing project agentstack_version %q: %w", c.AgentStackVersion, err)
	}

	if pv.Major() > cv.Major() {
		return fmt.Errorf(
			"project was created with agentstack %s; this CLI is %s — upgrade the CLI to work on this project",
			c.AgentStackVersion, cliVersion)
	}
	return nil
}
