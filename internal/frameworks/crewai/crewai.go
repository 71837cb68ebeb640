// Package crewai implements the CrewAI framework: a src/crew.py entrypoint
// holding a single @CrewBase class whose @agent methods construct Agent
// objects with a tools list. The engine does the structural editing; this
// package supplies the CrewAI-specific shape and the rendered method
// snippets.
package crewai

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/agentops-ai/agentstack/internal/agents"
	"github.com/agentops-ai/agentstack/internal/entrypoint"
	"github.com/agentops-ai/agentstack/internal/frameworks"
	"github.com/agentops-ai/agentstack/internal/tasks"
)

// Entrypoint is the entrypoint file path relative to the project root.
const Entrypoint = "src/crew.py"

var shape = entrypoint.Shape{
	ClassDecorator: "CrewBase",
	AgentCall:      "Agent",
	ToolsKeyword:   "tools",
	ToolsArgIndex:  -1,
}

var agentMethodTmpl = template.Must(template.New("agent").Parse(
	`    @agent
    def {{ .Name }}(self) -> Agent:
        return Agent(
            config=self.agents_config['{{ .Name }}'],
            tools=[],
            verbose=True,
        )`))

var taskMethodTmpl = template.Must(template.New("task").Parse(
	`    @task
    def {{ .Name }}(self) -> Task:
        return Task(
            config=self.tasks_config['{{ .Name }}'],
        )`))

type framework struct{}

func init() {
	frameworks.Register(&framework{})
}

func (f *framework) Name() string { return frameworks.CrewAI }

func (f *framework) EntrypointPath() string { return Entrypoint }

func (f *framework) entrypointPath(projectDir string) string {
	return filepath.Join(projectDir, filepath.FromSlash(Entrypoint))
}

// open starts a mutation session against the project's entrypoint file.
func (f *framework) open(projectDir string) (*entrypoint.Document, error) {
	return entrypoint.Open(f.entrypointPath(projectDir), shape)
}

// mutate runs fn inside an open/mutate/close session. A failed mutation
// discards the session, leaving the file on disk untouched.
func (f *framework) mutate(projectDir string, fn func(*entrypoint.Document) error) error {
	doc, err := f.open(projectDir)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		doc.Discard()
		return err
	}
	return doc.Close()
}

func (f *framework) Validate(projectDir string) error {
	doc, err := f.open(projectDir)
	if err != nil {
		return err
	}
	defer doc.Discard()
	return doc.Validate()
}

func (f *framework) AgentNames(projectDir string) ([]string, error) {
	doc, err := f.open(projectDir)
	if err != nil {
		return nil, err
	}
	defer doc.Discard()
	return doc.MethodNames(entrypoint.KindAgent)
}

func (f *framework) TaskNames(projectDir string) ([]string, error) {
	doc, err := f.open(projectDir)
	if err != nil {
		return nil, err
	}
	defer doc.Discard()
	return doc.MethodNames(entrypoint.KindTask)
}

func (f *framework) AddAgent(projectDir string, agent agents.Config) error {
	body, err := renderMethod(agentMethodTmpl, agent.Name)
	if err != nil {
		return err
	}
	return f.mutate(projectDir, func(doc *entrypoint.Document) error {
		return doc.AddMethod(entrypoint.KindAgent, agent.Name, body)
	})
}

func (f *framework) RemoveAgent(projectDir, name string) error {
	return f.mutate(projectDir, func(doc *entrypoint.Document) error {
		return doc.RemoveMethod(entrypoint.KindAgent, name)
	})
}

func (f *framework) AddTask(projectDir string, task tasks.Config) error {
	body, err := renderMethod(taskMethodTmpl, task.Name)
	if err != nil {
		return err
	}
	return f.mutate(projectDir, func(doc *entrypoint.Document) error {
		return doc.AddMethod(entrypoint.KindTask, task.Name, body)
	})
}

func (f *framework) RemoveTask(projectDir, name string) error {
	return f.mutate(projectDir, func(doc *entrypoint.Document) error {
		return doc.RemoveMethod(entrypoint.KindTask, name)
	})
}

func (f *framework) ToolNames(projectDir, agentName string) ([]string, error) {
	doc, err := f.open(projectDir)
	if err != nil {
		return nil, err
	}
	defer doc.Discard()
	return doc.ToolNames(agentName)
}

func (f *framework) AddTool(projectDir, agentName, toolIdent string) error {
	return f.mutate(projectDir, func(doc *entrypoint.Document) error {
		return doc.AddTool(agentName, toolIdent)
	})
}

func (f *framework) RemoveTool(projectDir, agentName, toolIdent string) error {
	return f.mutate(projectDir, func(doc *entrypoint.Document) error {
		return doc.RemoveTool(agentName, toolIdent)
	})
}

// renderMethod renders a method snippet for the given name. The engine
// receives the result as an opaque, fully-indented string.
func renderMethod(tmpl *template.Template, name string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Name string }{Name: name}); err != nil {
		return "", fmt.Errorf("rendering %s method for %q: %w", tmpl.Name(), name, err)
	}
	return buf.String(), nil
}
