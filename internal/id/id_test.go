package id

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	got, err := Generate(ImagePrefix)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasPrefix(got, "img-") {
		t.Errorf("Generate(%q) = %q, want img- prefix", ImagePrefix, got)
	}
	if len(got) != len("img-")+21 {
		t.Errorf("unexpected ID length: %q", got)
	}
}

func TestGenerateUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := MustGenerate(GroupPrefix)
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}
