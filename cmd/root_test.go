package cmd

import (
	"testing"

	"github.com/xvierd/gitcoach/internal/config"
)

func TestRootCmd_Structure(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}

	if rootCmd.Use != "gitcoach" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "gitcoach")
	}
}

func TestRootCmd_Flags(t *testing.T) {
	for _, name := range []string{"db", "json", "dir", "timeout"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag should be registered", name)
		}
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := map[string]bool{
		"status":  false,
		"doctor":  false,
		"history": false,
		"config":  false,
		"learn":   false,
	}

	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q should be registered", name)
		}
	}
}

func TestInterpretPorcelain_DoesNotPanic(t *testing.T) {
	appConfig = config.DefaultConfig()

	interpretPorcelain("")
	interpretPorcelain("?? new.txt\n M changed.txt\nA  staged.txt")
	interpretPorcelain("M  staged-modified.txt")
}
