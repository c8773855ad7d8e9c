package severity

import "testing"

func TestClassifyCriticalBeatsNothing(t *testing.T) {
	if got := Classify("SLA Breach Notification"); got != Critical {
		t.Fatalf("expected critical, got %s", got)
	}
}

func TestClassifyPositive(t *testing.T) {
	if got := Classify("Approved"); got != Positive {
		t.Fatalf("expected positive, got %s", got)
	}
	if got := Classify("On Time"); got != Positive {
		t.Fatalf("expected positive, got %s", got)
	}
}

func TestClassifyWarning(t *testing.T) {
	if got := Classify("Awaiting L2 sign-off"); got != Warning {
		t.Fatalf("expected warning, got %s", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("OVERDUE"); got != Critical {
		t.Fatalf("expected critical for uppercase input, got %s", got)
	}
}

func TestClassifyPositiveWinsOverLaterBuckets(t *testing.T) {
	// "Completed with escalated review" matches positive before warning.
	if got := Classify("Completed with escalated review"); got != Positive {
		t.Fatalf("expected positive to win, got %s", got)
	}
}

func TestClassifyEmptyAndUnknown(t *testing.T) {
	if got := Classify(""); got != Neutral {
		t.Fatalf("expected neutral for empty, got %s", got)
	}
	if got := Classify("Informational"); got != Neutral {
		t.Fatalf("expected neutral for unmatched, got %s", got)
	}
}
