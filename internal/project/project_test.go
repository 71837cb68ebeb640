package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func sampleConfig() *Config {
	return &Config{
		Name:              "demo",
		Version:           "0.1.0",
		Framework:         "crewai",
		AgentStackVersion: "1.2.0",
		Tools:             []string{"exa"},
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	if err := sampleConfig().Save(dir); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if c.Name != "demo" || c.Framework != "crewai" {
		t.Errorf("Load = %+v", c)
	}
	if !c.HasTool("exa") {
		t.Error("expected exa in tools")
	}
}

func TestLoad_NotAProject(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFind_WalksUp(t *testing.T) {
	root := t.TempDir()
	if err := sampleConfig().Save(root); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "src", "config")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	found, err := Find(nested)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	// Resolve symlinks before comparing; t.TempDir may live behind one.
	wantResolved, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(found)
	if gotResolved != wantResolved {
		t.Errorf("Find = %s, want %s", found, root)
	}
}

func TestFind_NoProject(t *testing.T) {
	_, err := Find(t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestToolBookkeeping(t *testing.T) {
	c := &Config{}

	c.AddTool("exa")
	c.AddTool("exa")
	if len(c.Tools) != 1 {
		t.Errorf("AddTool not idempotent: %v", c.Tools)
	}

	c.RemoveTool("missing")
	if len(c.Tools) != 1 {
		t.Errorf("RemoveTool of absent tool should be a no-op: %v", c.Tools)
	}

	c.RemoveTool("exa")
	if len(c.Tools) != 0 {
		t.Errorf("RemoveTool failed: %v", c.Tools)
	}
}

func TestCheckCompatible(t *testing.T) {
	tests := []struct {
		name       string
		cliVersion string
		projectVer string
		wantErr    bool
	}{
		{"same major", "1.5.0", "1.2.0", false},
		{"cli newer major", "2.0.0", "1.2.0", false},
		{"project newer major", "1.5.0", "2.0.0", true},
		{"dev build", "dev", "99.0.0", false},
		{"empty project version", "1.0.0", "", false},
		{"v prefix tolerated", "v1.5.0", "v1.2.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{AgentStackVersion: tt.projectVer}
			err := c.CheckCompatible(tt.cliVersion)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckCompatible(%s) error = %v, wantErr %v", tt.cliVersion, err, tt.wantErr)
			}
		})
	}
}
