package id

import (
	"strings"
	"testing"
)

func TestGenerate_Length(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   int
	}{
		{"default on zero", 0, DefaultLength},
		{"default on negative", -5, DefaultLength},
		{"explicit length", 8, 8},
		{"long", 32, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.length)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("Generate() length = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestGenerate_Alphabet(t *testing.T) {
	got, err := Generate(64)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for _, r := range got {
		if !strings.ContainsRune(alphabet, r) {
			t.Errorf("Generate() produced character %q outside alphabet", r)
		}
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	got, err := GenerateWithPrefix(PrefixUser, DefaultLength)
	if err != nil {
		t.Fatalf("GenerateWithPrefix() error = %v", err)
	}
	if !strings.HasPrefix(got, "usr_") {
		t.Errorf("GenerateWithPrefix() = %q, want usr_ prefix", got)
	}
	if len(got) != len(PrefixUser)+1+DefaultLength {
		t.Errorf("GenerateWithPrefix() length = %d", len(got))
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		got := MustGenerateWithPrefix(PrefixBid, DefaultLength)
		if seen[got] {
			t.Fatalf("duplicate id generated: %s", got)
		}
		seen[got] = true
	}
}
