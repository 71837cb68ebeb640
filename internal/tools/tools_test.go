package tools

import (
	"strings"
	"testing"
)

func TestList_AllConfigsValid(t *testing.T) {
	configs, err := List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(configs) == 0 {
		t.Fatal("registry is empty")
	}

	for _, c := range configs {
		if c.Name == "" {
			t.Error("tool with empty name")
		}
		if len(c.Tools) == 0 {
			t.Errorf("tool %s exports no identifiers", c.Name)
		}
	}
}

func TestList_SortedByName(t *testing.T) {
	configs, err := List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	for i := 1; i < len(configs); i++ {
		if configs[i-1].Name > configs[i].Name {
			t.Errorf("List not sorted: %s before %s", configs[i-1].Name, configs[i].Name)
		}
	}
}

func TestGet(t *testing.T) {
	c, err := Get("exa")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if c.Category != "search" {
		t.Errorf("Category = %q, want %q", c.Category, "search")
	}
	if len(c.Tools) != 3 {
		t.Errorf("len(Tools) = %d, want 3", len(c.Tools))
	}
	if _, ok := c.Env["EXA_API_KEY"]; !ok {
		t.Error("expected EXA_API_KEY in env")
	}
}

func TestGet_UnknownToolListsAvailable(t *testing.T) {
	_, err := Get("nope")
	if err == nil {
		t.Fatal("expected error for unknown tool, got nil")
	}
	if !strings.Contains(err.Error(), "exa") {
		t.Errorf("error should list available tools: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		valid bool
	}{
		{
			name:  "minimal valid",
			json:  `{"name": "demo", "category": "search", "tools": ["run_demo"]}`,
			valid: true,
		},
		{
			name:  "missing tools",
			json:  `{"name": "demo", "category": "search"}`,
			valid: false,
		},
		{
			name:  "empty tools",
			json:  `{"name": "demo", "category": "search", "tools": []}`,
			valid: false,
		},
		{
			name:  "bad category",
			json:  `{"name": "demo", "category": "misc", "tools": ["run_demo"]}`,
			valid: false,
		},
		{
			name:  "bad identifier",
			json:  `{"name": "demo", "category": "search", "tools": ["not-an-ident"]}`,
			valid: false,
		},
		{
			name:  "unknown field",
			json:  `{"name": "demo", "category": "search", "tools": ["run_demo"], "extra": 1}`,
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.json))
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if result.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v (issues: %+v)", result.Valid, tt.valid, result.Issues)
			}
			if !tt.valid && len(result.Issues) == 0 {
				t.Error("invalid config should report at least one issue")
			}
		})
	}
}
