package labels

import "sync"

// FieldCandidates defines the keyword sets used to match free-form column
// headers to semantic address fields. Mailing and Property are the type sets;
// the rest are content sets. A typed lookup requires a header to contain a
// keyword from both its type set and its content set.
type FieldCandidates struct {
	Mailing  []string `json:"mailing"`
	Property []string `json:"property"`
	Address  []string `json:"address"`
	City     []string `json:"city"`
	State    []string `json:"state"`
	Zip      []string `json:"zip"`
	Name     []string `json:"name"`
}

var (
	fieldCandidatesMu     sync.RWMutex
	activeFieldCandidates = defaultFieldCandidates()
)

func defaultFieldCandidates() FieldCandidates {
	return FieldCandidates{
		Mailing:  []string{"mail", "current"},
		Property: []string{"prop", "situs", "location"},
		Address:  []string{"addr", "street", "line1"},
		City:     []string{"city"},
		State:    []string{"state", "st"},
		Zip:      []string{"zip", "post"},
		Name:     []string{"name", "owner", "recipient"},
	}
}

// DefaultFieldCandidates returns the built-in header keyword sets.
func DefaultFieldCandidates() FieldCandidates {
	return defaultFieldCandidates().clone()
}

// SetFieldCandidates updates the keyword sets used during header matching.
// Fields left nil fall back to the built-in defaults, allowing callers to
// override only the parts they need.
func SetFieldCandidates(candidates FieldCandidates) {
	fieldCandidatesMu.Lock()
	defer fieldCandidatesMu.Unlock()
	activeFieldCandidates = candidates.withDefaults()
}

func getFieldCandidates() FieldCandidates {
	fieldCandidatesMu.RLock()
	defer fieldCandidatesMu.RUnlock()
	return activeFieldCandidates.clone()
}

func (c FieldCandidates) withDefaults() FieldCandidates {
	defaults := defaultFieldCandidates()
	return FieldCandidates{
		Mailing:  pickStrings(c.Mailing, defaults.Mailing),
		Property: pickStrings(c.Property, defaults.Property),
		Address:  pickStrings(c.Address, defaults.Address),
		City:     pickStrings(c.City, defaults.City),
		State:    pickStrings(c.State, defaults.State),
		Zip:      pickStrings(c.Zip, defaults.Zip),
		Name:     pickStrings(c.Name, defaults.Name),
	}
}

func (c FieldCandidates) clone() FieldCandidates {
	return FieldCandidates{
		Mailing:  cloneStrings(c.Mailing),
		Property: cloneStrings(c.Property),
		Address:  cloneStrings(c.Address),
		City:     cloneStrings(c.City),
		State:    cloneStrings(c.State),
		Zip:      cloneStrings(c.Zip),
		Name:     cloneStrings(c.Name),
	}
}

func pickStrings(custom, fallback []string) []string {
	if custom == nil {
		return cloneStrings(fallback)
	}
	return cloneStrings(custom)
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
