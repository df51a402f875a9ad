package main

import "testing"

func TestRootCommand(t *testing.T) {
	root := newRootCommand()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	if !names["serve"] || !names["migrate"] {
		t.Fatalf("expected serve and migrate subcommands, got %v", names)
	}
	if f := root.PersistentFlags().Lookup("config"); f == nil || f.DefValue != "config.yaml" {
		t.Fatalf("expected --config flag with default config.yaml")
	}
}
