package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/agentops-ai/agentstack/internal/project"
)

//go:embed all:templates
var templateFS embed.FS

// Data holds all template variables available to project templates.
type Data struct {
	Name        string // e.g., "trip-planner"
	Description string // Human-readable description
	Framework   string // e.g., "crewai"
	ClassName   string // Derived: "TripplannerCrew"
	Version     string // Project semver, e.g., "0.1.0"
	CLIVersion  string // Version of the CLI doing the generating
	Year        int    // Current year
}

// Result holds the outcome of a project generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewData creates a Data with derived fields populated.
func NewData(name, framework, cliVersion string) *Data {
	return &Data{
		Name:        name,
		Description: fmt.Sprintf("%s: a multi-agent project", name),
		Framework:   framework,
		ClassName:   className(name),
		Version:     "0.1.0",
		CLIVersion:  cliVersion,
		Year:        time.Now().Year(),
	}
}

// className derives the entrypoint class name from a project name:
// separators are dropped, the first letter is capitalized and the rest
// lowered, then "Crew" is appended. "trip-planner" -> "TripplannerCrew".
func className(name string) string {
	flat := strings.NewReplacer("-", "", "_", "").Replace(name)
	if flat == "" {
		return "Crew"
	}
	return strings.ToUpper(flat[:1]) + strings.ToLower(flat[1:]) + "Crew"
}

// outputName maps a template path to its output path. The .tmpl extension
// is stripped, and dotfile templates are stored without the leading dot so
// they survive packaging ("gitignore" -> ".gitignore").
func outputName(relPath string) string {
	relPath = strings.TrimSuffix(relPath, ".tmpl")
	dir, base := filepath.Split(relPath)
	switch base {
	case "gitignore", "env":
		base = "." + base
	}
	return dir + base
}

// Generate creates a new project from scaffolding templates.
func Generate(framework string, data *Data, outputDir string) (*Result, error) {
	templatesDir := "templates/" + framework

	// Verify template set exists in embedded FS.
	if _, err := fs.ReadDir(templateFS, templatesDir); err != nil {
		return nil, fmt.Errorf("no project template for framework %q: %w", framework, err)
	}

	// Create output directory.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Check for existing files to prevent accidental overwrites.
	existingEntries, err := os.ReadDir(outputDir)
	if err == nil && len(existingEntries) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{
		OutputDir: outputDir,
	}

	walkErr := fs.WalkDir(templateFS, templatesDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		tmplBytes, err := fs.ReadFile(templateFS, path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		rel := strings.TrimPrefix(path, templatesDir+"/")
		outName := outputName(rel)
		outPath := filepath.Join(outputDir, filepath.FromSlash(outName))
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
		}

		// Parse and execute the Go template.
		tmpl, err := template.New(entry.Name()).Parse(string(tmplBytes))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", path, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("executing template %s: %w", path, err)
		}

		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	// Sanity-check the generated project file.
	if _, err := project.Load(outputDir); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not read generated %s: %v", project.FileName, err))
	}

	return result, nil
}
