package leads

import (
	"testing"
	"time"
)

func TestFormatSubmittedAt(t *testing.T) {
	loc, err := LoadLocation("")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	if got := FormatSubmittedAt(fixedInstant, loc); got != "03-01-2024, 17:30:00" {
		t.Fatalf("unexpected timestamp %q", got)
	}
}

func TestFormatSubmittedAtNilLocationUsesIST(t *testing.T) {
	if got := FormatSubmittedAt(fixedInstant, nil); got != "03-01-2024, 17:30:00" {
		t.Fatalf("unexpected timestamp %q", got)
	}
}

func TestFormatSubmittedAtTwentyFourHourClock(t *testing.T) {
	late := time.Date(2024, time.December, 31, 18, 45, 9, 0, time.UTC) // 00:15:09 IST next day
	if got := FormatSubmittedAt(late, istFixed); got != "01-01-2025, 00:15:09" {
		t.Fatalf("unexpected timestamp %q", got)
	}
}

func TestLoadLocationUnknownZone(t *testing.T) {
	if _, err := LoadLocation("Mars/Olympus_Mons"); err == nil {
		t.Fatalf("expected error for unknown zone")
	}
}

func TestLoadLocationOtherZone(t *testing.T) {
	loc, err := LoadLocation("UTC")
	if err != nil {
		t.Fatalf("load UTC: %v", err)
	}
	if got := FormatSubmittedAt(fixedInstant, loc); got != "03-01-2024, 12:00:00" {
		t.Fatalf("unexpected timestamp %q", got)
	}
}
