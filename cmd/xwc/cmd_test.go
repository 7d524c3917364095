package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// testCommand returns a command whose output is captured in the returned
// buffer. Configuration comes from defaults only.
func testCommand(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
	verbose = false
	logLevel = "error"
	logFormat = ""

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}
