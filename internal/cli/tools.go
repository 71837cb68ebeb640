package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/agentops-ai/agentstack/internal/tools"
	"github.com/spf13/cobra"
)

var (
	toolsJSON  bool
	toolAgents []string
)

func init() {
	toolsListCmd.Flags().BoolVar(&toolsJSON, "json", false, "Output in JSON format")
	toolsAddCmd.Flags().StringSliceVar(&toolAgents, "agents", nil, "Agents to attach the tool to (default: all)")
	toolsRemoveCmd.Flags().StringSliceVar(&toolAgents, "agents", nil, "Agents to detach the tool from (default: all)")

	toolsCmd.AddCommand(toolsListCmd)
	toolsCmd.AddCommand(toolsAddCmd)
	toolsCmd.AddCommand(toolsRemoveCmd)
	rootCmd.AddCommand(toolsCmd)
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List and manage the tools agents can use",
}

var toolsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available tools",
	Long:  `List the tools that can be added to agents, grouped by category.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		available, err := tools.List()
		if err != nil {
			return err
		}

		// Mark tools already added to the enclosing project, if any.
		installed := map[string]bool{}
		if _, cfg, _, err := locateProject(); err == nil {
			for _, name := range cfg.Tools {
				installed[name] = true
			}
		}

		if toolsJSON {
			out, err := json.MarshalIndent(available, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling tool list: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tCATEGORY\tTOOLS\t")
		for _, t := range available {
			name := t.Name
			if installed[t.Name] {
				name += " *"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t\n", name, t.Category, strings.Join(t.Tools, ", "))
		}
		w.Flush()
		if len(installed) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "\n* already added to this project")
		}
		return nil
	},
}

var toolsAddCmd = &cobra.Command{
	Use:   "add <tool>",
	Short: "Add a tool to agents in the current project",
	Long: `Add a tool to agents in the current project. Each of the tool's
exported functions is appended to the tools list of the target agents.

Examples:
  agentstack tools add exa
  agentstack tools add exa --agents researcher,writer`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tool, err := tools.Get(args[0])
		if err != nil {
			return err
		}

		dir, cfg, fw, err := locateProject()
		if err != nil {
			return err
		}

		targets, err := resolveAgents(dir, fw.AgentNames)
		if err != nil {
			return err
		}

		for _, agent := range targets {
			for _, ident := range toolIdentifiers(tool) {
				if err := fw.AddTool(dir, agent, ident); err != nil {
					return fmt.Errorf("adding %s to agent %q: %w", tool.Name, agent, err)
				}
			}
		}

		cfg.AddTool(tool.Name)
		if err := cfg.Save(dir); err != nil {
			return err
		}

		fmt.Printf("Added %s to %s\n", tool.Name, strings.Join(targets, ", "))
		printToolSetup(tool)
		return nil
	},
}

var toolsRemoveCmd = &cobra.Command{
	Use:   "remove <tool>",
	Short: "Remove a tool from agents in the current project",
	Long: `Remove a tool from agents in the current project. Each of the tool's
exported functions is removed from the tools list of the target agents;
anything else in the list stays put.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tool, err := tools.Get(args[0])
		if err != nil {
			return err
		}

		dir, cfg, fw, err := locateProject()
		if err != nil {
			return err
		}

		targets, err := resolveAgents(dir, fw.AgentNames)
		if err != nil {
			return err
		}

		for _, agent := range targets {
			for _, ident := range toolIdentifiers(tool) {
				if err := fw.RemoveTool(dir, agent, ident); err != nil {
					return fmt.Errorf("removing %s from agent %q: %w", tool.Name, agent, err)
				}
			}
		}

		// Only drop the project-level record when no agent was excluded.
		if len(toolAgents) == 0 {
			cfg.RemoveTool(tool.Name)
			if err := cfg.Save(dir); err != nil {
				return err
			}
		}

		fmt.Printf("Removed %s from %s\n", tool.Name, strings.Join(targets, ", "))
		return nil
	},
}

// resolveAgents returns the --agents selection, or every agent in the project
// when the flag is unset.
func resolveAgents(dir string, agentNames func(string) ([]string, error)) ([]string, error) {
	if len(toolAgents) > 0 {
		return toolAgents, nil
	}
	names, err := agentNames(dir)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no agents in this project; run `agentstack generate agent <name>` first")
	}
	return names, nil
}

// toolIdentifiers maps a registry tool to the source text inserted into an
// agent's tools list, one entry per exported function.
func toolIdentifiers(tool *tools.Config) []string {
	idents := make([]string, 0, len(tool.Tools))
	for _, fn := range tool.Tools {
		idents = append(idents, "tools."+fn)
	}
	return idents
}

func printToolSetup(tool *tools.Config) {
	if len(tool.Packages) > 0 {
		fmt.Printf("\nInstall the Python dependencies:\n  pip install %s\n", strings.Join(tool.Packages, " "))
	}
	if len(tool.Env) > 0 {
		keys := make([]string, 0, len(tool.Env))
		for k := range tool.Env {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Println("\nSet these in your .env file:")
		for _, k := range keys {
			fmt.Printf("  %s\n", k)
		}
	}
	if tool.CTA != "" {
		fmt.Printf("\n%s\n", tool.CTA)
	}
}
