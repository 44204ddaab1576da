package inspect

import "fmt"

// Format selects how Render encodes a Report.
type Format int

const (
	// FormatJSON renders the whole report as one indented JSON document.
	FormatJSON Format = iota
	// FormatYAML renders the whole report as one YAML document.
	FormatYAML
	// FormatNDJSON renders one JSON entry per line, without the totals.
	FormatNDJSON
	// FormatTable renders a human-readable table of the entries.
	FormatTable
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatNDJSON:
		return "ndjson"
	case FormatTable:
		return "table"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// ParseFormat is the inverse of Format.String.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "yaml":
		return FormatYAML, nil
	case "ndjson":
		return FormatNDJSON, nil
	case "table":
		return FormatTable, nil
	default:
		return 0, fmt.Errorf("unknown format %q", s)
	}
}
