package main

import (
	"bytes"
	"strings"
	"testing"

	"stretchwin/internal/platform"
	"stretchwin/internal/types"
)

func TestConfigFromFlags(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantScope  platform.ProcessScope
		wantDryRun bool
		wantEnv    string
		wantErr    bool
	}{
		{"defaults", nil, platform.ScopeParentProcess, false, "production", false},
		{"all processes", []string{"--scope", "all"}, platform.ScopeAllProcesses, false, "production", false},
		{"self with dry run", []string{"--scope=self", "--dry-run"}, platform.ScopeCurrentProcess, true, "production", false},
		{"test environment defaults to dry run", []string{"--env", "test"}, platform.ScopeParentProcess, true, "test", false},
		{"test environment with dry run disabled", []string{"--env", "test", "--dry-run=false"}, platform.ScopeParentProcess, false, "test", false},
		{"unknown scope", []string{"--scope", "desktop"}, 0, false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCommand()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags() error = %v", err)
			}

			cfg, err := configFromFlags(cmd)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("configFromFlags() error = %v", err)
			}
			if cfg.Scope != tt.wantScope {
				t.Errorf("Scope = %v, want %v", cfg.Scope, tt.wantScope)
			}
			if cfg.DryRun != tt.wantDryRun {
				t.Errorf("DryRun = %v, want %v", cfg.DryRun, tt.wantDryRun)
			}
			if cfg.Environment != tt.wantEnv {
				t.Errorf("Environment = %q, want %q", cfg.Environment, tt.wantEnv)
			}
		})
	}
}

func TestRootCommand_RejectsUnknownScope(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--scope", "desktop"})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "unknown process scope") {
		t.Errorf("Execute() error = %v, want unknown process scope", err)
	}
}

func TestPrintResult(t *testing.T) {
	vs := types.ProcessInfo{Name: "devenv", WindowTitle: "App - Microsoft Visual Studio"}

	tests := []struct {
		name   string
		result *types.PlacementResult
		want   []string
	}{
		{
			name: "placed",
			result: &types.PlacementResult{
				Target:    types.Rect{Width: 1920, Height: 1040},
				Eligible:  []types.ProcessInfo{vs},
				Placed:    []types.ProcessInfo{vs},
				Described: []string{vs.Description()},
			},
			want: []string{"Target: 1920x1040+0+0", "Placed: devenv - App - Microsoft Visual Studio"},
		},
		{
			name: "dry run",
			result: &types.PlacementResult{
				Target:   types.Rect{Width: 1920, Height: 1040},
				DryRun:   true,
				Eligible: []types.ProcessInfo{vs},
			},
			want: []string{"Would place: devenv - App - Microsoft Visual Studio"},
		},
		{
			name: "nothing eligible and clamped",
			result: &types.PlacementResult{
				Clamped:   true,
				Described: []string{"notepad - Untitled", "explorer - Home"},
			},
			want: []string{"height clamped to 0", "No editor window found among 2 titled windows"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			printResult(&out, tt.result)
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output %q should contain %q", out.String(), want)
				}
			}
		})
	}
}
