package app

import (
	"flag"
	"io"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-in", "w.xml", "-scale", "2", "-seed", "7"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Input != "w.xml" || cfg.Scale != 2 || cfg.Seed != 7 {
		t.Fatalf("parsed config = %+v", cfg)
	}
	if cfg.Iterations != NewConfig().Iterations {
		t.Fatalf("Iterations default lost: %d", cfg.Iterations)
	}
}
