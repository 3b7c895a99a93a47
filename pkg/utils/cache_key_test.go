package utils

import "testing"

func TestFingerprintNormalizes(t *testing.T) {
	a := Fingerprint("places", "Puri", "3", "Relaxing")
	b := Fingerprint("places", "  puri ", "3", "RELAXING")
	if a != b {
		t.Fatalf("expected identical fingerprints, got %q and %q", a, b)
	}

	c := Fingerprint("places", "Goa", "3", "relaxing")
	if a == c {
		t.Fatalf("different destinations must not collide: %q", a)
	}
}

func TestPlanCacheKeyStable(t *testing.T) {
	a := PlanCacheKey("Puri", 3, "Relaxing")
	b := PlanCacheKey("puri ", 3, " relaxing")
	if a != b {
		t.Fatalf("expected identical keys, got %q and %q", a, b)
	}
	if len(a) != 32 {
		t.Fatalf("expected md5 hex key, got %q", a)
	}

	if a == PlanCacheKey("Puri", 4, "Relaxing") {
		t.Fatalf("day count must be part of the key")
	}
}
