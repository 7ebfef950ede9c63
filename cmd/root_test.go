package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jfmyers9/homepod/internal/config"
)

func TestRootCmd_ConfigFlagNamesDefaultPath(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("config")
	if flag == nil {
		t.Fatal("--config flag not registered")
	}

	want := filepath.Join(config.GetConfigDir(), "config.yaml")
	if !strings.Contains(flag.Usage, want) {
		t.Errorf("--config usage = %q, want it to mention %q", flag.Usage, want)
	}
}
