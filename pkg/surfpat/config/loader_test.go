package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderAllEmpty(t *testing.T) {
	loader := Loader{}

	// Defaults carry no answer class, so compilation must fail.
	if _, err := loader.Load(); err == nil {
		t.Error("empty loader should fail without answer classes")
	}
}

func TestLoaderNonExistentConfig(t *testing.T) {
	loader := Loader{ConfigPath: "/nonexistent/surfpat.yaml"}

	if _, err := loader.Load(); err == nil {
		t.Error("Should error on nonexistent config")
	}
}

func TestLoaderValidFiles(t *testing.T) {
	tmpDir := t.TempDir()

	cfgPath := filepath.Join(tmpDir, "surfpat.yaml")
	if err := os.WriteFile(cfgPath, []byte("answer_classes: {PERSON: person}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	gazPath := filepath.Join(tmpDir, "gazetteer.yaml")
	if err := os.WriteFile(gazPath, []byte("classes:\n  person:\n    PERSON: [ada]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := Loader{ConfigPath: cfgPath, GazetteerPath: gazPath}
	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if comp.Settings == nil {
		t.Fatal("Should have settings")
	}
	if comp.Gazetteer == nil || comp.Gazetteer.Keys() != 1 {
		t.Error("Should have a gazetteer with one class key")
	}
}

func TestLoaderNonExistentGazetteer(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "surfpat.yaml")
	if err := os.WriteFile(cfgPath, []byte("answer_classes: {PERSON: person}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := Loader{ConfigPath: cfgPath, GazetteerPath: "/nonexistent/g.yaml"}
	if _, err := loader.Load(); err == nil {
		t.Error("Should error on nonexistent gazetteer")
	}
}
