package cli

import (
	"fmt"
	"os"

	"github.com/agentops-ai/agentstack/internal/branding"
	"github.com/agentops-ai/agentstack/internal/config"
	"github.com/agentops-ai/agentstack/internal/frameworks"
	_ "github.com/agentops-ai/agentstack/internal/frameworks/crewai"
	"github.com/agentops-ai/agentstack/internal/project"
	"github.com/agentops-ai/agentstack/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds agent projects and keeps their source in sync:
agents, tasks, and tool bindings are written into your crew entrypoint without
touching the code you wrote around them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// Skip the banner for commands with machine-readable output.
		if cmd.Name() == "version" {
			return
		}

		// Non-blocking banner from cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// locateProject resolves the enclosing project from the working directory.
// It returns the project root, its config, and the framework driver after a
// CLI/project version compatibility check.
func locateProject() (string, *project.Config, frameworks.Framework, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", nil, nil, fmt.Errorf("resolving working directory: %w", err)
	}
	dir, err := project.Find(cwd)
	if err != nil {
		return "", nil, nil, fmt.Errorf("%w (run `%s init <name>` to create one)", err, branding.CLIName())
	}
	cfg, err := project.Load(dir)
	if err != nil {
		return "", nil, nil, err
	}
	if err := cfg.CheckCompatible(buildVersion); err != nil {
		return "", nil, nil, err
	}
	fw, err := frameworks.Get(cfg.Framework)
	if err != nil {
		return "", nil, nil, err
	}
	return dir, cfg, fw, nil
}
