package agents

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `# user comment that must survive
researcher:
  role: Research analyst
  goal: Find relevant sources
  backstory: Years of digging through archives
  llm: openai/gpt-4o

writer:
  role: Writer
  goal: Summarize findings
  backstory: Former journalist
  llm: anthropic/claude-sonnet
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := ConfigPath(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestAll_FileOrder(t *testing.T) {
	dir := writeConfig(t, sampleConfig)

	all, err := All(dir)
	if err != nil {
		t.Fatalf("All error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(All) = %d, want 2", len(all))
	}
	if all[0].Name != "researcher" || all[1].Name != "writer" {
		t.Errorf("order = [%s, %s], want [researcher, writer]", all[0].Name, all[1].Name)
	}
	if all[0].Role != "Research analyst" {
		t.Errorf("Role = %q, want %q", all[0].Role, "Research analyst")
	}
	if all[1].LLM != "anthropic/claude-sonnet" {
		t.Errorf("LLM = %q, want %q", all[1].LLM, "anthropic/claude-sonnet")
	}
}

func TestAll_MissingFile(t *testing.T) {
	all, err := All(t.TempDir())
	if err != nil {
		t.Fatalf("All error: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("len(All) = %d, want 0 for missing file", len(all))
	}
}

func TestGet(t *testing.T) {
	dir := writeConfig(t, sampleConfig)

	c, err := Get(dir, "writer")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if c.Goal != "Summarize findings" {
		t.Errorf("Goal = %q, want %q", c.Goal, "Summarize findings")
	}

	if _, err := Get(dir, "missing"); err == nil {
		t.Error("expected error for unknown agent, got nil")
	}
}

func TestAppend_PreservesExistingContent(t *testing.T) {
	dir := writeConfig(t, sampleConfig)

	err := Append(dir, Config{
		Name:      "reviewer",
		Role:      "Reviewer",
		Goal:      "Check accuracy",
		Backstory: "Methodical editor",
		LLM:       "openai/gpt-4o",
	})
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}

	data, err := os.ReadFile(ConfigPath(dir))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), sampleConfig) {
		t.Error("existing content was rewritten; append must preserve it byte-for-byte")
	}

	all, err := All(dir)
	if err != nil {
		t.Fatalf("All error: %v", err)
	}
	if len(all) != 3 || all[2].Name != "reviewer" {
		t.Errorf("appended record missing or out of order: %+v", all)
	}
}

func TestAppend_CreatesFile(t *testing.T) {
	dir := t.TempDir()

	err := Append(dir, Config{Name: "researcher", Role: "r", Goal: "g", Backstory: "b", LLM: "m"})
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}

	c, err := Get(dir, "researcher")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if c.Role != "r" {
		t.Errorf("Role = %q, want %q", c.Role, "r")
	}
}

func TestAppend_DuplicateName(t *testing.T) {
	dir := writeConfig(t, sampleConfig)

	err := Append(dir, Config{Name: "researcher"})
	if err == nil {
		t.Fatal("expected error for duplicate agent name, got nil")
	}
	if !strings.Contains(err.Error(), "researcher") {
		t.Errorf("error should name the duplicate: %v", err)
	}
}
