package entities

import (
	"testing"
	"time"
)

func TestSection_Index(t *testing.T) {
	if got := SectionPlate.Index(); got != 0 {
		t.Fatalf("expected 0 got %d", got)
	}
	if got := SectionFunding.Index(); got != 3 {
		t.Fatalf("expected 3 got %d", got)
	}
	if got := Section("unknown").Index(); got != -1 {
		t.Fatalf("expected -1 got %d", got)
	}
}

func TestSection_StepIndex(t *testing.T) {
	if got := SectionPlate.StepIndex(); got != 1 {
		t.Fatalf("expected step 1 got %d", got)
	}
	if got := SectionCar.StepIndex(); got != 3 {
		t.Fatalf("expected step 3 got %d", got)
	}
}

func TestNewOnboardingRecord(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	rec := NewOnboardingRecord(now)

	if rec.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("expected a generated session ID")
	}
	if rec.ActiveSection != SectionPlate {
		t.Fatalf("expected plate section got %s", rec.ActiveSection)
	}
	if rec.Personal.IDType != IDTypeNRIC {
		t.Fatalf("expected NRIC default got %s", rec.Personal.IDType)
	}
	if rec.Lookup.Phase != LookupIdle {
		t.Fatalf("expected idle lookup got %s", rec.Lookup.Phase)
	}
	if rec.Attempted == nil || len(rec.Attempted) != 0 {
		t.Fatalf("expected empty attempted map got %v", rec.Attempted)
	}
	if !rec.CreatedAt.Equal(now) || !rec.UpdatedAt.Equal(now) {
		t.Fatal("expected timestamps set to creation time")
	}
}
