package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout replaces os.Stdout with a pipe, calls f, then returns the
// captured output and restores os.Stdout. It is NOT safe for parallel use
// because os.Stdout is a package-level variable.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		io.Copy(&buf, r) //nolint:errcheck
		close(done)
	}()

	f()

	w.Close()
	<-done
	os.Stdout = orig
	r.Close()
	return buf.String()
}

func sampleRows() []relationRow {
	return []relationRow{
		{From: "Kid", To: "Grandma", Label: "grandmother", Path: []string{"Kid", "Dad", "Grandma"}},
		{From: "Kid", To: "Cousin", Label: "1st cousin, once removed", Cultural: "2nd aunt", Path: []string{"Kid", "Cousin"}},
		{From: "Dad", To: "Uncle", Label: "brother", Half: true, Path: []string{"Dad", "Grandma", "Uncle"}},
	}
}

func TestFormatJSON(t *testing.T) {
	v := map[string]string{"relationship": "aunt"}

	got := captureStdout(t, func() { formatJSON(v) })

	var out map[string]string
	if err := json.Unmarshal([]byte(got), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, got)
	}
	if out["relationship"] != "aunt" {
		t.Errorf("got %q", out["relationship"])
	}
	if !strings.Contains(got, "\n  ") {
		t.Errorf("expected indented output, got %q", got)
	}
}

func TestFormatTable(t *testing.T) {
	got := captureStdout(t, func() {
		formatTable([]string{"A", "LONGER"}, [][]string{{"wide-cell", "x"}})
	})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "A          LONGER" {
		t.Errorf("header: got %q", lines[0])
	}
	if lines[1] != "---------  ------" {
		t.Errorf("separator: got %q", lines[1])
	}
	if lines[2] != "wide-cell  x" {
		t.Errorf("row: got %q", lines[2])
	}
}

func TestOutputRelations(t *testing.T) {
	resetFlags(t)

	t.Run("quiet", func(t *testing.T) {
		flagFmt = "quiet"
		got := captureStdout(t, func() { outputRelations(nil, sampleRows()) })
		if got != "grandmother\n1st cousin, once removed\nbrother\n" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("table", func(t *testing.T) {
		flagFmt = "table"
		got := captureStdout(t, func() { outputRelations(nil, sampleRows()) })
		if !strings.Contains(got, "Kid > Dad > Grandma") {
			t.Errorf("missing path: %q", got)
		}
		if !strings.Contains(got, "1st cousin, once removed (2nd aunt)") {
			t.Errorf("missing cultural alternate: %q", got)
		}
		if !strings.Contains(got, "brother [half]") {
			t.Errorf("missing half-sibling marker: %q", got)
		}
	})

	t.Run("json", func(t *testing.T) {
		flagFmt = "json"
		got := captureStdout(t, func() { outputRelations(map[string]int{"n": 2}, sampleRows()) })
		if strings.TrimSpace(got) != "{\n  \"n\": 2\n}" {
			t.Errorf("got %q", got)
		}
	})
}
