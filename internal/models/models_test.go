package models

import "testing"

func TestPatchApply(t *testing.T) {
	e := Exhibitor{ID: "ex-1", Name: "NanoTech Lab", Contact: "Ali Reza", Booth: "A1", Notes: "old"}

	booth := "B2"
	ExhibitorPatch{Booth: &booth}.Apply(&e)

	if e.Booth != "B2" {
		t.Errorf("expected patched booth B2, got %q", e.Booth)
	}
	if e.Name != "NanoTech Lab" || e.Contact != "Ali Reza" || e.Notes != "old" {
		t.Errorf("expected nil patch fields to keep current values, got %+v", e)
	}
	if e.ID != "ex-1" {
		t.Errorf("expected id to be immutable, got %q", e.ID)
	}

	empty := ""
	ExhibitorPatch{Notes: &empty}.Apply(&e)
	if e.Notes != "" {
		t.Error("expected an explicit empty string to clear the field")
	}
}

func TestCloneDoesNotShareBackingArrays(t *testing.T) {
	a := SampleAggregate()
	c := a.Clone()

	c.Exhibitors[0].Name = "Changed"
	if a.Exhibitors[0].Name == "Changed" {
		t.Error("expected clone mutations not to reach the original")
	}

	if len(c.Booths) != len(a.Booths) || len(c.Events) != len(a.Events) || len(c.Attendees) != len(a.Attendees) {
		t.Error("expected clone to carry all collections")
	}
}
