package js

import (
	"strings"
	"testing"
)

func TestRuntimeBasic(t *testing.T) {
	r := NewRuntime()

	result, err := r.Execute("1 + 2")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.ToInteger() != 3 {
		t.Errorf("Expected 3, got %v", result.ToInteger())
	}
}

func TestRuntimeSyntaxError(t *testing.T) {
	r := NewRuntime()

	if _, err := r.Execute("this is not javascript"); err == nil {
		t.Fatal("Expected an error for invalid code")
	}
	if len(r.Errors()) != 1 {
		t.Errorf("Expected 1 collected error, got %d", len(r.Errors()))
	}
}

func TestRuntimeConsoleSink(t *testing.T) {
	r := NewRuntime()

	var lines []string
	r.SetConsoleSink(func(level, message string) {
		lines = append(lines, level+": "+message)
	})

	if _, err := r.Execute(`console.log("hello", 42); console.warn("careful")`); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("Expected 2 console lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "log: hello 42" {
		t.Errorf("Unexpected first line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "warn: ") {
		t.Errorf("Unexpected second line %q", lines[1])
	}
}
