package traits

import "testing"

func TestBehaviorRoundTrip(t *testing.T) {
	for _, b := range Behaviors {
		got, err := ParseBehavior(b.String())
		if err != nil {
			t.Errorf("ParseBehavior(%q) error: %v", b.String(), err)
		}
		if got != b {
			t.Errorf("ParseBehavior(%q) = %v, want %v", b.String(), got, b)
		}
	}
}

func TestParseBehaviorUnknown(t *testing.T) {
	if _, err := ParseBehavior("timid"); err == nil {
		t.Error("expected error for unknown behavior")
	}
}
