package writer

import (
	"bytes"
	"os"
	"testing"
)

func TestStandardOutputWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := NewOutputWriter(&buf)

	if err := w.Write("a\n    b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Write("\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "a\n    b\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestNewStandardErrorWriter(t *testing.T) {
	w := NewStandardErrorWriter()
	if w.out != os.Stderr {
		t.Errorf("Expected os.Stderr, got %v", w.out)
	}
}
