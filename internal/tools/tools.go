package tools

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed configs/*.json
var configFS embed.FS

// Config describes a single registry tool.
type Config struct {
	// Name is the registry name, e.g. "exa".
	Name string `json:"name"`
	// Category groups tools in listings, e.g. "search".
	Category string `json:"category"`
	// Tools holds the identifiers exported to agents' tool lists.
	Tools []string `json:"tools"`
	// URL points at the tool vendor's site.
	URL string `json:"url,omitempty"`
	// CTA is shown to the user after the tool is added.
	CTA string `json:"cta,omitempty"`
	// Env maps required env var names to default values (nil means the
	// user must supply one).
	Env map[string]*string `json:"env,omitempty"`
	// Packages lists the Python packages the tool needs in the project.
	Packages []string `json:"packages,omitempty"`
}

// List returns every registry tool, sorted by name.
func List() ([]Config, error) {
	entries, err := fs.ReadDir(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("reading embedded tool configs: %w", err)
	}

	var configs []Config
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		c, err := load(path.Join("configs", entry.Name()))
		if err != nil {
			return nil, err
		}
		configs = append(configs, *c)
	}
	sort.Slice(configs, func(i, j int) bool { return configs[i].Name < configs[j].Name })
	return configs, nil
}

// Get returns the registry tool with the given name.
func Get(name string) (*Config, error) {
	c, err := load(path.Join("configs", name+".json"))
	if err != nil {
		names, lerr := Names()
		if lerr != nil {
			return nil, err
		}
		return nil, fmt.Errorf("no tool named %q in the registry (available: %s)", name, strings.Join(names, ", "))
	}
	return c, nil
}

// Names returns the registry tool names, sorted.
func Names() ([]string, error) {
	configs, err := List()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(configs))
	for i, c := range configs {
		names[i] = c.Name
	}
	return names, nil
}

// load reads and validates one embedded config file.
func load(filePath string) (*Config, error) {
	data, err := configFS.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", filePath, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("tool config %s is invalid: %s", filePath, result.Issues[0].Message)
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filePath, err)
	}
	return &c, nil
}
