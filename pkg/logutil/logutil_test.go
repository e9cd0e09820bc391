package logutil

import (
	"io"
	"os"
	"strings"
	"testing"
)

func TestGetLogger(t *testing.T) {
	defer SetOutput(io.Discard)

	logger := GetLogger("[test] ")
	var sb strings.Builder
	SetOutput(&sb)

	logger.Println("out")
	if !strings.Contains(sb.String(), "[test] ") {
		t.Errorf("log output %q misses prefix", sb.String())
	}
	if !strings.Contains(sb.String(), "out") {
		t.Errorf("log output %q misses message", sb.String())
	}

	SetOutput(io.Discard)
	sb.Reset()
	logger.Println("discarded")
	if sb.String() != "" {
		t.Errorf("got log output %q after redirecting away", sb.String())
	}
}

func TestSetOutputFile(t *testing.T) {
	defer SetOutput(io.Discard)

	logger := GetLogger("[test] ")
	fname := t.TempDir() + "/log"
	if err := SetOutputFile(fname); err != nil {
		t.Fatalf("SetOutputFile(%q) -> %v", fname, err)
	}
	logger.Println("to file")

	// Switching the destination closes the file.
	if err := SetOutputFile(""); err != nil {
		t.Fatalf("SetOutputFile(\"\") -> %v", err)
	}

	content, err := os.ReadFile(fname)
	if err != nil {
		t.Fatalf("ReadFile(%q) -> %v", fname, err)
	}
	if !strings.Contains(string(content), "to file") {
		t.Errorf("log file content %q misses message", content)
	}
}

func TestSetOutputFile_BadPath(t *testing.T) {
	if err := SetOutputFile(t.TempDir() + "/non/existent/dir/log"); err == nil {
		t.Errorf("SetOutputFile with a bad path -> nil error, want non-nil")
	}
}
