package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the current project's crew entrypoint",
	Long: `Validate the current project: the crew entrypoint must parse, contain
exactly one crew class, use unique agent and task names, and define at least
one agent and one task.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, cfg, fw, err := locateProject()
		if err != nil {
			return err
		}

		if err := fw.Validate(dir); err != nil {
			return err
		}

		agentNames, err := fw.AgentNames(dir)
		if err != nil {
			return err
		}
		taskNames, err := fw.TaskNames(dir)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d agent(s), %d task(s), framework %s\n",
			fw.EntrypointPath(), len(agentNames), len(taskNames), cfg.Framework)
		return nil
	},
}
