package labels

import "testing"

func TestSetFieldCandidatesOverridesAndFillsGaps(t *testing.T) {
	defer SetFieldCandidates(FieldCandidates{})

	SetFieldCandidates(FieldCandidates{Name: []string{"attn"}})
	cands := getFieldCandidates()
	if len(cands.Name) != 1 || cands.Name[0] != "attn" {
		t.Fatalf("Name candidates = %v, want the override", cands.Name)
	}
	// Unset groups keep their defaults.
	if len(cands.City) == 0 || cands.City[0] != "city" {
		t.Errorf("City candidates = %v, want defaults", cands.City)
	}

	row := makeRow(
		"Attn", "FACILITIES DEPT",
		"Owner Name", "JANE DOE",
		"Address", "9 Elm St",
		"City", "Springfield",
		"State", "IL",
		"Zip", "62704",
	)
	records, _ := CleanRows([]Row{row}, "")
	if records[0].Name != "Facilities Dept" {
		t.Errorf("Name = %q, want the custom candidate to win", records[0].Name)
	}
}

func TestDefaultFieldCandidatesReturnsCopy(t *testing.T) {
	defer SetFieldCandidates(FieldCandidates{})

	cands := DefaultFieldCandidates()
	cands.City[0] = "mutated"
	if got := getFieldCandidates(); got.City[0] == "mutated" {
		t.Error("mutating the returned slice must not affect the active set")
	}
}
