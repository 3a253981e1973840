//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	points, err := tf.WritePoints("points.txt", [2]float64{0, 0}, [2]float64{5, 5})
	require.NoError(t, err)

	err = tf.StartApp(points)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("lassopick"), "Should show title")

	// Set up exit monitoring before sending 'q'
	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	tf.Quit()

	select {
	case exitErr := <-done:
		require.NoError(t, exitErr, "Process should exit cleanly with 'q'")
		return
	case <-time.After(1500 * time.Millisecond):
		t.Logf("'q' didn't work within 1.5 seconds, using Ctrl+C")
		tf.SendCtrlC()
	}

	select {
	case exitErr := <-done:
		t.Logf("Process exited with Ctrl+C (exit code: %v)", exitErr)
	case <-time.After(750 * time.Millisecond):
		t.Error("Application did not exit within total timeout")
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		tf.SendCtrlC()
	}
}

func TestQuitIsTypedIntoSavePrompt(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	points, err := tf.WritePoints("points.txt", [2]float64{0, 0})
	require.NoError(t, err)

	require.NoError(t, tf.StartApp(points))
	require.True(t, tf.Ready(), "Should receive ready signal")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	tf.SendKeys(KeySave)
	require.True(t, tf.SeePlain("Save file name:"), "Should open the save prompt")

	// 'q' is part of the name while the prompt is open
	tf.Quit()
	select {
	case <-done:
		t.Fatal("app quit while the save prompt was open")
	case <-time.After(500 * time.Millisecond):
	}

	tf.SendKeys(KeyEsc)
	require.True(t, tf.SeePlain("Save canceled"))
	tf.Quit()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not exit after quit")
	}
}
