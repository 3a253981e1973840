//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates the temporary working directory for a run
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WritePoints writes a two-column point table into the workspace
func (tf *TUITestFramework) WritePoints(name string, pts ...[2]float64) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	var content string
	for _, p := range pts {
		content += fmt.Sprintf("%g %g\n", p[0], p[1])
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write points: %w", err)
	}
	return path, nil
}
