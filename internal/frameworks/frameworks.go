// Package frameworks defines the interface between the CLI and a framework's
// entrypoint file, plus the registry of supported frameworks. A framework
// knows where the entrypoint lives, how to validate it, and how to apply
// agent/task/tool mutations through the entrypoint engine.
package frameworks

import (
	"fmt"
	"sort"

	"github.com/agentops-ai/agentstack/internal/agents"
	"github.com/agentops-ai/agentstack/internal/tasks"
)

// CrewAI is the default framework.
const CrewAI = "crewai"

// Framework is the narrow surface the CLI consumes. All paths are project
// roots; each call is a full open/mutate/close session against the
// entrypoint file.
type Framework interface {
	// Name returns the framework identifier, e.g. "crewai".
	Name() string

	// EntrypointPath returns the entrypoint file path relative to the
	// project root.
	EntrypointPath() string

	// Validate checks that the project's entrypoint file is ready to run.
	Validate(projectDir string) error

	// AgentNames lists agent method names in declaration order.
	AgentNames(projectDir string) ([]string, error)

	// TaskNames lists task method names in declaration order.
	TaskNames(projectDir string) ([]string, error)

	// AddAgent appends a new agent method to the entrypoint class.
	AddAgent(projectDir string, agent agents.Config) error

	// RemoveAgent deletes an agent method from the entrypoint class.
	RemoveAgent(projectDir, name string) error

	// AddTask appends a new task method to the entrypoint class.
	AddTask(projectDir string, task tasks.Config) error

	// RemoveTask deletes a task method from the entrypoint class.
	RemoveTask(projectDir, name string) error

	// ToolNames lists the entries of an agent's tool list in list order.
	ToolNames(projectDir, agentName string) ([]string, error)

	// AddTool adds a tool identifier to an agent's tool list. Adding an
	// identifier that is already present is a no-op.
	AddTool(projectDir, agentName, toolIdent string) error

	// RemoveTool removes a tool identifier from an agent's tool list.
	// Removing an absent identifier is a no-op.
	RemoveTool(projectDir, agentName, toolIdent string) error
}

var registry = map[string]Framework{}

// Register adds a framework implementation to the registry. Framework
// packages call this from their init functions.
func Register(f Framework) {
	registry[f.Name()] = f
}

// Get returns the framework implementation for name.
func Get(name string) (Framework, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("framework %q is not supported (supported: %v)", name, Names())
	}
	return f, nil
}

// Names returns the supported framework names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
