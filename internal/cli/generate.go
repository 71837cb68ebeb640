package cli

import (
	"fmt"
	"regexp"

	"github.com/agentops-ai/agentstack/internal/agents"
	"github.com/agentops-ai/agentstack/internal/tasks"
	"github.com/spf13/cobra"
)

// Agent and task names become Python method names in the crew entrypoint.
var identPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

var (
	agentRole      string
	agentGoal      string
	agentBackstory string
	agentLLM       string

	taskDescription    string
	taskExpectedOutput string
	taskAgent          string
)

func init() {
	generateAgentCmd.Flags().StringVar(&agentRole, "role", "Add your role here", "What the agent does in the crew")
	generateAgentCmd.Flags().StringVar(&agentGoal, "goal", "Add your goal here", "What the agent is trying to achieve")
	generateAgentCmd.Flags().StringVar(&agentBackstory, "backstory", "Add your backstory here", "Context that shapes the agent's behavior")
	generateAgentCmd.Flags().StringVar(&agentLLM, "llm", "openai/gpt-4o", "Model the agent runs on, as provider/model")

	generateTaskCmd.Flags().StringVar(&taskDescription, "description", "Add your description here", "What the task should accomplish")
	generateTaskCmd.Flags().StringVar(&taskExpectedOutput, "expected-output", "Add your expected output here", "What a completed task produces")
	generateTaskCmd.Flags().StringVar(&taskAgent, "agent", "", "Agent responsible for the task (default: unassigned)")

	generateCmd.AddCommand(generateAgentCmd)
	generateCmd.AddCommand(generateTaskCmd)
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Add agents and tasks to the current project",
	Long: `Add an agent or task to the current project: a record is appended to
the config YAML and a matching decorated method is inserted into the crew
entrypoint. Code outside the inserted method is left byte-for-byte intact.`,
}

var generateAgentCmd = &cobra.Command{
	Use:   "agent <name>",
	Short: "Add an agent to the crew",
	Long: `Add an agent to the crew.

Examples:
  agentstack generate agent researcher
  agentstack generate agent researcher --role "Senior Researcher" --llm anthropic/claude-sonnet-4-0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := validateIdent("agent", name); err != nil {
			return err
		}

		dir, _, fw, err := locateProject()
		if err != nil {
			return err
		}

		record := agents.Config{
			Name:      name,
			Role:      agentRole,
			Goal:      agentGoal,
			Backstory: agentBackstory,
			LLM:       agentLLM,
		}

		if err := fw.AddAgent(dir, record); err != nil {
			return err
		}
		if err := agents.Append(dir, record); err != nil {
			return err
		}

		fmt.Printf("Added agent %q to %s\n", name, fw.EntrypointPath())
		fmt.Printf("Edit its role, goal, and backstory in %s\n", agents.ConfigFile)
		return nil
	},
}

var generateTaskCmd = &cobra.Command{
	Use:   "task <name>",
	Short: "Add a task to the crew",
	Long: `Add a task to the crew.

Examples:
  agentstack generate task research
  agentstack generate task research --agent researcher`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := validateIdent("task", name); err != nil {
			return err
		}

		dir, _, fw, err := locateProject()
		if err != nil {
			return err
		}

		record := tasks.Config{
			Name:           name,
			Description:    taskDescription,
			ExpectedOutput: taskExpectedOutput,
			Agent:          taskAgent,
		}

		if err := fw.AddTask(dir, record); err != nil {
			return err
		}
		if err := tasks.Append(dir, record); err != nil {
			return err
		}

		fmt.Printf("Added task %q to %s\n", name, fw.EntrypointPath())
		fmt.Printf("Edit its description and expected output in %s\n", tasks.ConfigFile)
		return nil
	},
}

func validateIdent(kind, name string) error {
	if !identPattern.MatchString(name) {
		return fmt.Errorf("invalid %s name %q: must be a lowercase identifier matching [a-z_][a-z0-9_]*", kind, name)
	}
	return nil
}
