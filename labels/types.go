package labels

import "encoding/json"

// Row is one ingested spreadsheet row. Headers keeps the source column order
// because field resolution is first-match-wins; Go maps alone would make the
// match order nondeterministic.
type Row struct {
	Headers []string
	Values  map[string]string
}

// Value returns the cell under the given header, or "" when absent.
func (r Row) Value(header string) string {
	return r.Values[header]
}

// LabelRecord is one cleaned, deduplicated mailing label. Records are
// immutable once emitted by CleanRows.
type LabelRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
}

// CleanStats reports what a CleanRows pass did with its input.
type CleanStats struct {
	Input      int `json:"input"`
	Rejected   int `json:"rejected"`
	Duplicates int `json:"duplicates"`
	Kept       int `json:"kept"`
}

// DefaultRecipientName is used when a row carries no resolvable name column.
const DefaultRecipientName = "Current Resident"

// Config aggregates runtime settings persisted to config.json.
type Config struct {
	TemplateID       string `json:"templateId"`
	OutputDir        string `json:"outputDir"`
	DefaultRecipient string `json:"defaultRecipient"`
}

// Clone creates a deep copy of the configuration so callers can mutate safely.
func (c Config) Clone() Config {
	buf, _ := json.Marshal(c)
	var out Config
	_ = json.Unmarshal(buf, &out)
	return out
}

// ApplyDefaults populates zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.TemplateID == "" {
		c.TemplateID = DefaultTemplateID
	}
	if c.OutputDir == "" {
		c.OutputDir = "pdf"
	}
	if c.DefaultRecipient == "" {
		c.DefaultRecipient = DefaultRecipientName
	}
}
