package cli

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/agentops-ai/agentstack/internal/branding"
	"github.com/agentops-ai/agentstack/internal/frameworks"
	"github.com/agentops-ai/agentstack/internal/scaffold"
	"github.com/spf13/cobra"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	initFramework string
	initOutputDir string
)

func init() {
	initCmd.Flags().StringVar(&initFramework, "framework", frameworks.CrewAI, "Agent framework to scaffold for")
	initCmd.Flags().StringVar(&initOutputDir, "output-dir", "", "Output directory (default: ./<name>)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Scaffold a new agent project",
	Long: `Scaffold a new agent project: the crew entrypoint, agent and task
config files, and the project file that tracks framework and tools.

Examples:
  agentstack init trip-planner
  agentstack init trip-planner --framework crewai`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := validateProjectName(name); err != nil {
			return err
		}
		if _, err := frameworks.Get(initFramework); err != nil {
			return err
		}

		data := scaffold.NewData(name, initFramework, buildVersion)
		outDir := initOutputDir
		if outDir == "" {
			outDir = filepath.Join(".", name)
		}

		result, err := scaffold.Generate(initFramework, data, outDir)
		if err != nil {
			return err
		}

		printScaffoldResult(result)

		// Next steps guidance.
		fmt.Println("\nNext steps:")
		fmt.Printf("  1. cd %s\n", outDir)
		fmt.Printf("  2. %s generate agent <name>\n", branding.CLIName())
		fmt.Printf("  3. %s generate task <name>\n", branding.CLIName())
		return nil
	},
}

func validateProjectName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match pattern [a-z0-9][a-z0-9-]*", name)
	}
	return nil
}

func printScaffoldResult(result *scaffold.Result) {
	fmt.Printf("Created project at %s/\n", result.OutputDir)
	for _, f := range result.Files {
		fmt.Printf("  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}
