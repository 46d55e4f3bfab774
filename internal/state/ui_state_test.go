package state

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultUIState(t *testing.T) {
	state := DefaultUIState()

	if state == nil {
		t.Fatal("DefaultUIState returned nil")
	}
	if state.Events.View != "grid" {
		t.Errorf("Expected grid view by default, got %q", state.Events.View)
	}
	if state.Events.Mine {
		t.Error("Expected All Events tab by default")
	}
	if state.Events.When != "all" {
		t.Errorf("Expected all filter by default, got %q", state.Events.When)
	}
}

func TestLoadNonExistent(t *testing.T) {
	state := Load(filepath.Join(t.TempDir(), "missing"))

	if state == nil {
		t.Fatal("Load returned nil for non-existent file")
	}
	if state.Events.View != "grid" {
		t.Errorf("Expected default view, got %q", state.Events.View)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	state := &UIState{
		Events: EventsState{View: "timeline", Mine: true, When: "past"},
	}
	if err := Save(tmpDir, state); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	path := filepath.Join(tmpDir, "ui-state.json")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("State file was not created")
	}

	loaded := Load(tmpDir)
	if loaded.Events != state.Events {
		t.Errorf("Loaded state %+v does not match saved state %+v", loaded.Events, state.Events)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "ui-state.json")
	if err := os.WriteFile(path, []byte(`{"events":{"mine":true}}`), 0644); err != nil {
		t.Fatalf("Failed to write state: %v", err)
	}

	loaded := Load(tmpDir)
	if !loaded.Events.Mine {
		t.Error("Expected mine to be loaded")
	}
	if loaded.Events.View != "grid" || loaded.Events.When != "all" {
		t.Errorf("Expected missing keys to keep defaults, got %+v", loaded.Events)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "subdir", "data")

	if err := Save(dataDir, DefaultUIState()); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dataDir, "ui-state.json")); os.IsNotExist(err) {
		t.Error("State file was not created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "ui-state.json")
	if err := os.WriteFile(path, []byte("invalid json {{{"), 0644); err != nil {
		t.Fatalf("Failed to write invalid JSON: %v", err)
	}

	state := Load(tmpDir)
	if state == nil {
		t.Fatal("Load returned nil for invalid JSON")
	}
	if state.Events.View != "grid" {
		t.Error("Expected defaults when JSON is invalid")
	}
}
