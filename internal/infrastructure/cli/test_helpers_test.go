package cli

import (
	"bytes"
	"os"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("read stdout: %v", err)
	}
	return buf.String()
}

func withTempDir(t *testing.T) (string, func()) {
	t.Helper()

	dir, err := os.MkdirTemp("", "prdlens-cli-test-*")
	if err != nil {
		t.Fatalf("temp dir: %v", err)
	}
	old, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	return dir, func() {
		_ = os.Chdir(old)
		_ = os.RemoveAll(dir)
	}
}

// runCommand executes the root command with the given args and returns the
// combined output written through cobra's writers.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	RootCmd.SetOut(buf)
	RootCmd.SetErr(buf)
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()

	// Leave no state behind: cobra prefers SetArgs over os.Args, so stale
	// args would leak into later Execute calls.
	RootCmd.SetArgs(nil)
	RootCmd.SetOut(nil)
	RootCmd.SetErr(nil)
	projectPath = ""
	reqAddDescription = ""
	reqAddCategory = ""
	reqAddPriority = ""
	reqAddCriteria = nil

	return buf.String(), err
}

// initWorkspace runs 'prdlens init' in the current directory.
func initWorkspace(t *testing.T) {
	t.Helper()

	if _, err := runCommand(t, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
}

const sampleDocument = `# Checkout Flow

## Overview

This document describes the purpose and background of the new checkout
flow for returning customers.

## Goals

- Reduce checkout abandonment
- Support saved payment methods

## Acceptance Criteria

- Checkout completes in under 3 seconds for 95% of requests
- Saved cards are listed for returning users
`
