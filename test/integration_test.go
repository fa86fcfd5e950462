// ABOUTME: Integration tests for the ticbuddy CLI.
// ABOUTME: Builds the binary and runs full workflows against a temp data dir.
package test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/ticbuddy/internal/chat"
	"github.com/harperreed/ticbuddy/internal/models"
	"github.com/harperreed/ticbuddy/internal/storage"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "ticbuddy")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/ticbuddy")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Use a temp data dir
	dataDir := filepath.Join(t.TempDir(), "data")

	run := func(args ...string) (string, error) {
		cmd := exec.Command(binary, args...)
		cmd.Env = append(os.Environ(),
			"TICBUDDY_DATA_DIR="+dataDir,
			"XDG_CONFIG_HOME="+t.TempDir(),
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Set up a profile
	output, err := run("profile", "init", "--name", "Sam", "--age", "11", "--tic", "Eye Blink", "--tic", "Throat Clearing")
	if err != nil {
		t.Fatalf("Failed to init profile: %v\n%s", err, output)
	}

	// Log tics
	output, err = run("log", "Eye Blink", "caught", "--urge", "3")
	if err != nil {
		t.Fatalf("Failed to log: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged") {
		t.Errorf("Expected 'Logged' in output, got: %s", output)
	}

	output, err = run("log", "Throat Clearing", "redirected", "--note", "during class")
	if err != nil {
		t.Fatalf("Failed to log: %v\n%s", err, output)
	}

	// A label outside the enumerations
	output, err = run("log", "nose scrunch")
	if err != nil {
		t.Fatalf("Failed to log custom tic: %v\n%s", err, output)
	}

	// Test listing
	output, err = run("list")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	for _, want := range []string{"Eye Blink", "Throat Clearing", "nose scrunch"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in list output, got: %s", want, output)
		}
	}

	// Test stats
	output, err = run("stats")
	if err != nil {
		t.Fatalf("Failed to get stats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Week 1") {
		t.Errorf("Expected phase heading in stats output, got: %s", output)
	}

	// Test coaching lookup
	output, err = run("coach", "Eye Blink")
	if err != nil {
		t.Fatalf("Failed to get coaching: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Slow Blink") {
		t.Errorf("Expected competing response in output, got: %s", output)
	}

	// Test profile view
	output, err = run("profile")
	if err != nil {
		t.Fatalf("Failed to view profile: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Sam") {
		t.Errorf("Expected name in profile output, got: %s", output)
	}

	// Test invalid outcome rejection
	output, err = run("log", "Eye Blink", "vanished")
	if err == nil {
		t.Errorf("Expected invalid outcome to fail, got: %s", output)
	}
}

type taggedTransport struct{ reply string }

func (f *taggedTransport) Complete(ctx context.Context, req chat.Request) (string, error) {
	return f.reply, nil
}

func TestChatTurnPersistsEntry(t *testing.T) {
	repo, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	defer repo.Close()

	tr := &taggedTransport{reply: "Great catch! [LOG_TIC: type=Sniffing, outcome=redirected] Keep it up! 🌟"}
	session, err := chat.NewSession(repo, tr)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	result, err := session.SendTurn(context.Background(), "I redirected my sniffing tic!")
	if err != nil {
		t.Fatalf("Turn failed: %v", err)
	}
	if result.LoggedEntry == nil {
		t.Fatal("Expected the tagged reply to log an entry")
	}
	if strings.Contains(result.Reply, "LOG_TIC") {
		t.Errorf("Expected tag stripped from reply, got: %s", result.Reply)
	}

	// The entry survives in the store
	entries, err := repo.ListEntries(0)
	if err != nil {
		t.Fatalf("Failed to list entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 stored entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Category != models.CategoryVocal || e.VocalType == nil || *e.VocalType != models.VocalSniffing {
		t.Errorf("Expected a Sniffing vocal entry, got: %+v", e)
	}
	if e.Outcome != models.OutcomeRedirected {
		t.Errorf("Expected redirected outcome, got: %s", e.Outcome)
	}

	// History round-trips through the store
	history, err := repo.LoadHistory()
	if err != nil {
		t.Fatalf("Failed to load history: %v", err)
	}
	if len(history) < 3 {
		t.Errorf("Expected welcome + turn in history, got %d messages", len(history))
	}
}
