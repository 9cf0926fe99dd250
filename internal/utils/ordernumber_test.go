package utils

import (
	"strings"
	"testing"
)

func TestGenerateOrderNumberShape(t *testing.T) {
	number := GenerateOrderNumber()
	if !strings.HasPrefix(number, "HE") {
		t.Errorf("expected HE prefix, got %q", number)
	}
	if len(number) < 10 {
		t.Errorf("order number suspiciously short: %q", number)
	}
}

func TestGenerateOrderNumberDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := GenerateOrderNumber()
		if seen[n] {
			t.Fatalf("duplicate order number generated: %q", n)
		}
		seen[n] = true
	}
}
