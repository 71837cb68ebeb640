// Package tasks reads and extends the per-project task configuration file
// (src/config/tasks.yaml). It mirrors the agents package: records keyed by
// task name, append-only writes that leave existing entries untouched.
package tasks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ConfigFile is the tasks config path relative to the project root.
const ConfigFile = "src/config/tasks.yaml"

// Config describes a single task.
type Config struct {
	Name           string `yaml:"-"`
	Description    string `yaml:"description"`
	ExpectedOutput string `yaml:"expected_output"`
	Agent          string `yaml:"agent"`
}

// ConfigPath returns the absolute path to the tasks config file.
func ConfigPath(projectDir string) string {
	return filepath.Join(projectDir, filepath.FromSlash(ConfigFile))
}

// All returns every task record in file order. A missing file yields an
// empty slice.
func All(projectDir string) ([]Config, error) {
	data, err := os.ReadFile(ConfigPath(projectDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", ConfigFile, err)
	}
	return parseAll(data)
}

func parseAll(data []byte) ([]Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFile, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing %s: top level must be a mapping of task names", ConfigFile)
	}

	var configs []Config
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		var c Config
		if err := value.Decode(&c); err != nil {
			return nil, fmt.Errorf("parsing task %q: %w", key.Value, err)
		}
		c.Name = key.Value
		configs = append(configs, c)
	}
	return configs, nil
}

// Get returns the task record with the given name.
func Get(projectDir, name string) (*Config, error) {
	all, err := All(projectDir)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Name == name {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("task %q not found in %s", name, ConfigFile)
}

// Exists reports whether a task record with the given name is present.
func Exists(projectDir, name string) (bool, error) {
	all, err := All(projectDir)
	if err != nil {
		return false, err
	}
	for _, c := range all {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// Append adds a new task record to the end of the config file, creating the
// file if needed. Fails if the name is already taken.
func Append(projectDir string, c Config) error {
	exists, err := Exists(projectDir, c.Name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("task %q already exists in %s", c.Name, ConfigFile)
	}

	entry, err := yaml.Marshal(map[string]Config{c.Name: c})
	if err != nil {
		return fmt.Errorf("serializing task %q: %w", c.Name, err)
	}

	path := ConfigPath(projectDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if n := len(existing); n > 0 && existing[n-1] != '\n' {
		if _, err := f.Write([]byte("\n")); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if _, err := f.Write(entry); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
