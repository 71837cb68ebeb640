package cli

import (
	"testing"

	"github.com/agentops-ai/agentstack/internal/tools"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "trip-planner", false},
		{"digits", "crew2", false},
		{"single char", "x", false},
		{"uppercase", "TripPlanner", true},
		{"underscore", "trip_planner", true},
		{"leading dash", "-trip", true},
		{"empty", "", true},
		{"spaces", "trip planner", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateProjectName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateProjectName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateIdent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "researcher", false},
		{"underscores", "web_scraper", false},
		{"leading underscore", "_private", false},
		{"digits after first", "agent2", false},
		{"leading digit", "2agent", true},
		{"dash", "web-scraper", true},
		{"uppercase", "Researcher", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateIdent("agent", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateIdent(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestToolIdentifiers(t *testing.T) {
	tool := &tools.Config{
		Name:  "exa",
		Tools: []string{"search", "find_similar"},
	}

	got := toolIdentifiers(tool)
	want := []string{"tools.search", "tools.find_similar"}
	if len(got) != len(want) {
		t.Fatalf("toolIdentifiers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("toolIdentifiers()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
