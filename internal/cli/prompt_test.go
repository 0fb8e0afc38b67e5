package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadBoundedIntRetriesUntilValid(t *testing.T) {
	in := strings.NewReader("abc\n0\n99\n3\n")
	var out bytes.Buffer
	p := NewPrompter(in, &out)

	got, err := p.ReadBoundedInt("Selection: ", 1, 6)
	if err != nil {
		t.Fatalf("ReadBoundedInt returned error: %v", err)
	}
	if got != 3 {
		t.Errorf("got %d, want 3", got)
	}

	output := out.String()
	if !strings.Contains(output, "Invalid input. Please enter a whole number.") {
		t.Errorf("missing parse-failure message in output:\n%s", output)
	}
	if !strings.Contains(output, "Please enter a number >= 1.") {
		t.Errorf("missing lower-bound message in output:\n%s", output)
	}
	if !strings.Contains(output, "Please enter a number <= 6.") {
		t.Errorf("missing upper-bound message in output:\n%s", output)
	}
	if n := strings.Count(output, "Selection: "); n != 4 {
		t.Errorf("prompt shown %d times, want 4", n)
	}
}

func TestReadBoundedIntNoUpperBound(t *testing.T) {
	in := strings.NewReader("1000000\n")
	var out bytes.Buffer
	p := NewPrompter(in, &out)

	got, err := p.ReadBoundedInt("Count: ", 1, NoMax)
	if err != nil {
		t.Fatalf("ReadBoundedInt returned error: %v", err)
	}
	if got != 1000000 {
		t.Errorf("got %d, want 1000000", got)
	}
}

func TestReadBoundedIntEOF(t *testing.T) {
	in := strings.NewReader("nope\n")
	var out bytes.Buffer
	p := NewPrompter(in, &out)

	if _, err := p.ReadBoundedInt("Selection: ", 1, 6); err == nil {
		t.Error("expected error when input is exhausted")
	}
}

func TestReadStringDoesNotRetryOnEmpty(t *testing.T) {
	in := strings.NewReader("\nlater\n")
	var out bytes.Buffer
	p := NewPrompter(in, &out)

	got, err := p.ReadString("Key: ")
	if err != nil {
		t.Fatalf("ReadString returned error: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty string", got)
	}
	// The second line must still be available to the next read.
	got, err = p.ReadString("Key: ")
	if err != nil {
		t.Fatalf("ReadString returned error: %v", err)
	}
	if got != "later" {
		t.Errorf("got %q, want %q", got, "later")
	}
}

func TestReadStringTrimsWhitespace(t *testing.T) {
	in := strings.NewReader("  spaced out  \n")
	var out bytes.Buffer
	p := NewPrompter(in, &out)

	got, err := p.ReadString("Key: ")
	if err != nil {
		t.Fatalf("ReadString returned error: %v", err)
	}
	if got != "spaced out" {
		t.Errorf("got %q, want %q", got, "spaced out")
	}
}

func TestReadConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{" y \n", true},
		{"n\n", false},
		{"yes\n", false},
		{"\n", false},
	}

	for _, tt := range tests {
		p := NewPrompter(strings.NewReader(tt.input), &bytes.Buffer{})
		got, err := p.ReadConfirm("Sure? ")
		if err != nil {
			t.Fatalf("ReadConfirm(%q) returned error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ReadConfirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
