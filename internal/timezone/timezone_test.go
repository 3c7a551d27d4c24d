package timezone

import (
	"testing"
	"time"
)

func TestIsValid(t *testing.T) {
	if !IsValid("America/Sao_Paulo") {
		t.Fatal("expected America/Sao_Paulo to be valid")
	}
	if IsValid("") {
		t.Fatal("expected empty timezone to be invalid")
	}
	if IsValid("Mars/Olympus_Mons") {
		t.Fatal("expected unknown timezone to be invalid")
	}
}

func TestLocationFallsBackToDefault(t *testing.T) {
	def := Location(DefaultTimezone)

	if got := Location(""); got != def {
		t.Fatalf("expected default location, got %v", got)
	}
	if got := Location("Mars/Olympus_Mons"); got != def {
		t.Fatalf("expected default location, got %v", got)
	}
}

func TestLocationCaching(t *testing.T) {
	a := Location("UTC")
	b := Location("UTC")
	if a != b {
		t.Fatal("expected cached *time.Location to be reused")
	}
	if !time.Now().In(a).Equal(time.Now().In(b)) {
		t.Fatal("locations disagree")
	}
}
