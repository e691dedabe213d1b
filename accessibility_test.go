package secretbind

import "testing"

func TestParseAccessibility(t *testing.T) {
	a, err := ParseAccessibility("after-first-unlock")
	if err != nil {
		t.Fatalf("ParseAccessibility: %v", err)
	}
	if a != AccessibleAfterFirstUnlock {
		t.Errorf("expected AccessibleAfterFirstUnlock, got %v", a)
	}
}

func TestParseAccessibilityUnknown(t *testing.T) {
	if _, err := ParseAccessibility("while-asleep"); err == nil {
		t.Error("expected error for unknown policy name")
	}
}

func TestAccessibilityNamesRoundTrip(t *testing.T) {
	for a := range accessibilityNames {
		parsed, err := ParseAccessibility(a.String())
		if err != nil {
			t.Errorf("ParseAccessibility(%q): %v", a.String(), err)
			continue
		}
		if parsed != a {
			t.Errorf("%v parsed as %v", a, parsed)
		}
	}
}
