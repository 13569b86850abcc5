package labels

import (
	"fmt"
	"strings"
)

// candidateAddress is one mailing-or-property 4-tuple pulled from a row.
type candidateAddress struct {
	addr  string
	city  string
	state string
	zip   string
}

// usable reports whether all four fields survived resolution.
func (a candidateAddress) usable() bool {
	return a.addr != "" && a.city != "" && a.state != "" && a.zip != ""
}

// CleanRows runs the full reconcile/normalize/deduplicate pass over the
// combined input rows and returns the records in row order. Rows that yield
// no usable address, or whose canonical signature was already emitted, are
// dropped silently; the stats record how many went each way.
//
// defaultRecipient replaces an unresolvable name; "" falls back to
// DefaultRecipientName.
func CleanRows(rows []Row, defaultRecipient string) ([]LabelRecord, CleanStats) {
	if defaultRecipient == "" {
		defaultRecipient = DefaultRecipientName
	}
	cands := getFieldCandidates()
	stats := CleanStats{Input: len(rows)}
	seen := make(map[string]struct{})
	records := make([]LabelRecord, 0, len(rows))

	for i, row := range rows {
		addr, name, ok := reconcileRow(row, cands)
		if !ok {
			stats.Rejected++
			continue
		}
		if name == "" {
			name = defaultRecipient
		}

		// The record identifier is the row's ordinal in the combined input,
		// stable only within one processing run.
		rec := LabelRecord{
			ID:       fmt.Sprintf("row-%d", i),
			Name:     TitleCase(name),
			Address1: TitleCase(addr.addr),
			City:     TitleCase(addr.city),
			State:    formatState(addr.state),
			Zip:      addr.zip, // original formatting preserved, incl. ZIP+4 suffix
		}

		sig := signature(rec)
		if _, dup := seen[sig]; dup {
			stats.Duplicates++
			continue
		}
		seen[sig] = struct{}{}
		records = append(records, rec)
	}
	stats.Kept = len(records)
	return records, stats
}

// reconcileRow resolves both address contexts plus the name, then applies the
// decision policy: mailing wins when usable, a usable property tuple is
// substituted wholesale (never merged field by field), anything else rejects
// the row.
func reconcileRow(row Row, cands FieldCandidates) (candidateAddress, string, bool) {
	mailing := candidateAddress{
		addr:  resolveOr(row, cands.Mailing, cands.Address, nil),
		city:  resolveOr(row, cands.Mailing, cands.City, nil),
		state: resolveOr(row, cands.Mailing, cands.State, nil),
		zip:   resolveOr(row, cands.Mailing, cands.Zip, nil),
	}
	// Property lookups fall back to untyped columns, excluding anything
	// explicitly tagged as mailing.
	property := candidateAddress{
		addr:  resolveOr(row, cands.Property, cands.Address, cands.Mailing),
		city:  resolveOr(row, cands.Property, cands.City, cands.Mailing),
		state: resolveOr(row, cands.Property, cands.State, cands.Mailing),
		zip:   resolveOr(row, cands.Property, cands.Zip, cands.Mailing),
	}
	name, _ := resolveGeneric(row, cands.Name, nil)

	chosen := mailing
	if !mailing.usable() {
		if !property.usable() {
			return candidateAddress{}, "", false
		}
		chosen = property
	}
	if !chosen.usable() {
		return candidateAddress{}, "", false
	}
	return chosen, name, true
}

// resolveOr tries the typed lookup first and, when generics is non-nil, falls
// back to a generic lookup excluding the other context's type keywords.
func resolveOr(row Row, typeKeys, contentKeys, excludeKeys []string) string {
	if value, ok := resolveTyped(row, typeKeys, contentKeys); ok {
		return value
	}
	if excludeKeys == nil {
		return ""
	}
	value, _ := resolveGeneric(row, contentKeys, excludeKeys)
	return value
}

func formatState(state string) string {
	state = strings.ToUpper(state)
	if len(state) > 2 {
		state = state[:2]
	}
	return state
}

// signature is the case-folded dedup key. It uses the post-formatting fields
// and only the 5-digit zip prefix, so "90210-1234" and "90210" collapse to
// the same recipient.
func signature(rec LabelRecord) string {
	zip, _, _ := strings.Cut(rec.Zip, "-")
	joined := strings.Join([]string{rec.Name, rec.Address1, rec.City, rec.State, zip}, "|")
	return strings.ToLower(joined)
}
