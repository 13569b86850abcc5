package labels

import (
	"reflect"
	"testing"
)

func TestCleanRowsMailingWinsOverProperty(t *testing.T) {
	row := makeRow(
		"Owner Name", "JANE DOE",
		"Mailing Address", "123 MAIN ST",
		"Mailing City", "SPRINGFIELD",
		"Mailing State", "il",
		"Mailing Zip", "62704-1234",
		"Property Address", "456 OAK AVE",
		"Property City", "SHELBYVILLE",
		"Property State", "IL",
		"Property Zip", "62565",
	)
	records, stats := CleanRows([]Row{row}, "")
	if stats.Kept != 1 || stats.Rejected != 0 {
		t.Fatalf("stats = %+v, want 1 kept", stats)
	}
	want := LabelRecord{
		ID:       "row-0",
		Name:     "Jane Doe",
		Address1: "123 Main St",
		City:     "Springfield",
		State:    "IL",
		Zip:      "62704-1234",
	}
	if !reflect.DeepEqual(records[0], want) {
		t.Errorf("record = %+v, want %+v", records[0], want)
	}
}

func TestCleanRowsPropertySubstitutedWholesale(t *testing.T) {
	// The mailing tuple has an address but no city, so it is unusable as a
	// whole; the property tuple must replace it entirely, not fill the gap.
	row := makeRow(
		"Mailing Address", "1 MAIL RD",
		"Property Address", "2 PROP RD",
		"Property City", "OGDENVILLE",
		"Property State", "TX",
		"Property Zip", "77777",
	)
	records, stats := CleanRows([]Row{row}, "")
	if stats.Kept != 1 {
		t.Fatalf("stats = %+v, want 1 kept", stats)
	}
	if records[0].Address1 != "2 Prop Rd" {
		t.Errorf("Address1 = %q, want the property address, never a merge", records[0].Address1)
	}
	if records[0].City != "Ogdenville" || records[0].State != "TX" || records[0].Zip != "77777" {
		t.Errorf("record = %+v, want the full property tuple", records[0])
	}
}

func TestCleanRowsGenericColumnsServeProperty(t *testing.T) {
	row := makeRow(
		"Address", "9 ELM ST",
		"City", "NORTH HAVERBROOK",
		"State", "OR",
		"Zip", "97001",
	)
	records, stats := CleanRows([]Row{row}, "")
	if stats.Kept != 1 {
		t.Fatalf("stats = %+v, want 1 kept", stats)
	}
	if records[0].Address1 != "9 Elm St" {
		t.Errorf("Address1 = %q", records[0].Address1)
	}
}

func TestCleanRowsRejectionConsumesOrdinal(t *testing.T) {
	bad := makeRow("Notes", "no address here")
	good := makeRow(
		"Address", "9 ELM ST",
		"City", "SPRINGFIELD",
		"State", "IL",
		"Zip", "62704",
	)
	records, stats := CleanRows([]Row{bad, good}, "")
	if stats.Rejected != 1 || stats.Kept != 1 {
		t.Fatalf("stats = %+v, want 1 rejected, 1 kept", stats)
	}
	if records[0].ID != "row-1" {
		t.Errorf("ID = %q, want row-1; rejected rows still consume ordinals", records[0].ID)
	}
}

func TestCleanRowsDefaultRecipient(t *testing.T) {
	row := makeRow(
		"Address", "9 ELM ST",
		"City", "SPRINGFIELD",
		"State", "IL",
		"Zip", "62704",
	)
	records, _ := CleanRows([]Row{row}, "")
	if records[0].Name != DefaultRecipientName {
		t.Errorf("Name = %q, want %q", records[0].Name, DefaultRecipientName)
	}

	records, _ = CleanRows([]Row{row}, "Valued Neighbor")
	if records[0].Name != "Valued Neighbor" {
		t.Errorf("Name = %q, want configured default", records[0].Name)
	}
}

func TestCleanRowsDeduplication(t *testing.T) {
	first := makeRow(
		"Name", "JANE DOE",
		"Address", "123 Main St",
		"City", "Springfield",
		"State", "IL",
		"Zip", "62704",
	)
	shoutyDuplicate := makeRow(
		"Name", "jane doe",
		"Address", "123 MAIN ST",
		"City", "SPRINGFIELD",
		"State", "il",
		"Zip", "62704",
	)
	zip4Duplicate := makeRow(
		"Name", "Jane Doe",
		"Address", "123 Main St",
		"City", "Springfield",
		"State", "IL",
		"Zip", "62704-1234",
	)
	other := makeRow(
		"Name", "Jane Doe",
		"Address", "125 Main St",
		"City", "Springfield",
		"State", "IL",
		"Zip", "62704",
	)

	records, stats := CleanRows([]Row{first, shoutyDuplicate, zip4Duplicate, other}, "")
	if stats.Duplicates != 2 || stats.Kept != 2 {
		t.Fatalf("stats = %+v, want 2 duplicates, 2 kept", stats)
	}
	// Earliest occurrence wins; its zip formatting is the one kept.
	if records[0].ID != "row-0" || records[0].Zip != "62704" {
		t.Errorf("first record = %+v, want row-0 with zip 62704", records[0])
	}
	if records[1].Address1 != "125 Main St" {
		t.Errorf("second record = %+v", records[1])
	}
}

func TestCleanRowsZipSuffixPreservedOnRecord(t *testing.T) {
	row := makeRow(
		"Address", "9 Elm St",
		"City", "Springfield",
		"State", "IL",
		"Zip", "62704-0042",
	)
	records, _ := CleanRows([]Row{row}, "")
	if records[0].Zip != "62704-0042" {
		t.Errorf("Zip = %q, want suffix preserved", records[0].Zip)
	}
}

func TestCleanRowsMailingAndPropertyRowsCollapse(t *testing.T) {
	mailingRow := makeRow(
		"Mailing Addr", "123 main st",
		"Mailing City", "anytown",
		"Mailing State", "ca",
		"Mailing Zip", "90210",
		"Owner Name", "jane doe",
	)
	propertyRow := makeRow(
		"Owner Name", "JANE DOE",
		"Property Addr", "123 Main St",
		"Property City", "Anytown",
		"Property State", "CA",
		"Property Zip", "90210",
	)

	records, stats := CleanRows([]Row{mailingRow, propertyRow}, "")
	if stats.Kept != 1 || stats.Duplicates != 1 {
		t.Fatalf("stats = %+v, want the two rows to collapse", stats)
	}
	want := LabelRecord{
		ID:       "row-0",
		Name:     "Jane Doe",
		Address1: "123 Main St",
		City:     "Anytown",
		State:    "CA",
		Zip:      "90210",
	}
	if !reflect.DeepEqual(records[0], want) {
		t.Errorf("record = %+v, want %+v", records[0], want)
	}
}

func TestFormatState(t *testing.T) {
	tests := []struct{ in, want string }{
		{"il", "IL"},
		{"Illinois", "IL"},
		{"tx", "TX"},
		{"t", "T"},
	}
	for _, tt := range tests {
		if got := formatState(tt.in); got != tt.want {
			t.Errorf("formatState(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
