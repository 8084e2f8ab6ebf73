package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetState returns the package to its uninitialized condition between tests.
func resetState() {
	CloseAll()
	logsDir = ""
	logLevel = LevelInfo
}

func TestDisabledLoggingIsNoOp(t *testing.T) {
	resetState()
	defer resetState()

	if err := Initialize("", "debug"); err != nil {
		t.Fatalf("Initialize with empty dir: %v", err)
	}

	// Must not panic or create files
	Boot("startup message")
	Report("report message")
	ReportError("failure: %v", os.ErrNotExist)

	l := Get(CategoryUI)
	if l.logger != nil {
		t.Error("expected no-op logger when logging is disabled")
	}
}

func TestCategoriesWriteSeparateFiles(t *testing.T) {
	resetState()
	defer resetState()

	tempDir := t.TempDir()
	if err := Initialize(tempDir, "debug"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	Catalog("loaded %d projects", 4)
	Report("analysis requested")
	UI("stage advanced")
	CloseAll()

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}

	found := map[Category]bool{}
	for _, e := range entries {
		for _, cat := range []Category{CategoryBoot, CategoryCatalog, CategoryReport, CategoryUI} {
			if strings.HasSuffix(e.Name(), string(cat)+".log") {
				found[cat] = true
			}
		}
	}
	for _, cat := range []Category{CategoryBoot, CategoryCatalog, CategoryReport, CategoryUI} {
		if !found[cat] {
			t.Errorf("expected a log file for category %q, entries: %v", cat, entries)
		}
	}
}

func TestLevelFiltersDebug(t *testing.T) {
	resetState()
	defer resetState()

	tempDir := t.TempDir()
	if err := Initialize(tempDir, "info"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	ReportDebug("hidden detail")
	Report("visible line")
	CloseAll()

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var reportFile string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), string(CategoryReport)+".log") {
			reportFile = filepath.Join(tempDir, e.Name())
		}
	}
	if reportFile == "" {
		t.Fatal("report log file not created")
	}

	data, err := os.ReadFile(reportFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "hidden detail") {
		t.Error("debug line written despite info level")
	}
	if !strings.Contains(content, "visible line") {
		t.Error("info line missing from log file")
	}
}

func TestErrorAlwaysLogged(t *testing.T) {
	resetState()
	defer resetState()

	tempDir := t.TempDir()
	if err := Initialize(tempDir, "error"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	ReportWarn("suppressed warning")
	ReportError("kept error")
	CloseAll()

	entries, _ := os.ReadDir(tempDir)
	var reportFile string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), string(CategoryReport)+".log") {
			reportFile = filepath.Join(tempDir, e.Name())
		}
	}
	if reportFile == "" {
		t.Fatal("report log file not created")
	}
	data, err := os.ReadFile(reportFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(data), "suppressed warning") {
		t.Error("warn line written despite error level")
	}
	if !strings.Contains(string(data), "kept error") {
		t.Error("error line missing from log file")
	}
}

func TestTimerLogsAtInfo(t *testing.T) {
	resetState()
	defer resetState()

	tempDir := t.TempDir()
	if err := Initialize(tempDir, "info"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	timer := StartTimer(CategoryReport, "analysis request")
	if d := timer.StopWithInfo(); d < 0 {
		t.Errorf("negative duration: %v", d)
	}
	CloseAll()

	entries, _ := os.ReadDir(tempDir)
	var reportFile string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), string(CategoryReport)+".log") {
			reportFile = filepath.Join(tempDir, e.Name())
		}
	}
	if reportFile == "" {
		t.Fatal("report log file not created")
	}
	data, err := os.ReadFile(reportFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "analysis request completed in") {
		t.Errorf("timer line missing, got: %s", data)
	}
}
