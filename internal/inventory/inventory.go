// Package inventory loads the dealership inventory feed.
//
// The feed is externally owned and loosely typed: every field on a record
// is optional, numbers arrive as numbers or strings depending on the
// upstream exporter, and consumers are expected to degrade to placeholder
// values rather than reject a record.
package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Text is a scalar feed field. It decodes from a JSON string, number,
// boolean or null, always normalizing to its string form.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch {
	case s == "null" || s == "":
		*t = ""
	case s[0] == '{' || s[0] == '[':
		// Structured values have no scalar reading.
		*t = ""
	case s[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*t = Text(v)
	default:
		// Number or bool; keep the literal. Trailing ".0" on integral
		// floats is dropped so {"year": 2017.0} reads as "2017".
		if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
			*t = Text(strconv.FormatInt(int64(f), 10))
		} else {
			*t = Text(s)
		}
	}
	return nil
}

// String returns the field trimmed of surrounding whitespace.
func (t Text) String() string { return strings.TrimSpace(string(t)) }

// IsZero reports whether the field is absent or blank.
func (t Text) IsZero() bool { return t.String() == "" }

// StringList decodes from a JSON array of scalars, or from a single
// scalar (wrapped as a one-element list). Anything else decodes empty.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var items []Text
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.String())
		}
		*l = out
		return nil
	}
	var single Text
	if err := json.Unmarshal(data, &single); err != nil || single.IsZero() {
		*l = nil
		return nil
	}
	*l = []string{single.String()}
	return nil
}

// Vehicle is a single inventory record. Field names follow the feed.
type Vehicle struct {
	Year          Text       `json:"year"`
	Make          Text       `json:"make"`
	Model         Text       `json:"model"`
	Trim          Text       `json:"trim"`
	VIN           Text       `json:"vin"`
	VehicleID     Text       `json:"vehicleId"`
	StockNumber   Text       `json:"stockNumber"`
	ID            Text       `json:"id"`
	Price         Text       `json:"price"`
	Mileage       Text       `json:"mileage"`
	DateAdded     Text       `json:"dateAdded"`
	Transmission  Text       `json:"transmission"`
	Engine        Text       `json:"engine"`
	EngineSpecs   Text       `json:"engineSpecs"`
	Drive         Text       `json:"drive"`
	Drivetrain    Text       `json:"drivetrain"`
	Fuel          Text       `json:"fuel"`
	FuelType      Text       `json:"fuelType"`
	ExteriorColor Text       `json:"exteriorColor"`
	Color         Text       `json:"color"`
	InteriorColor Text       `json:"interiorColor"`
	Type          Text       `json:"type"`
	BodyStyle     Text       `json:"bodyStyle"`
	Badge         Text       `json:"badge"`
	Description   Text       `json:"description"`
	Features      StringList `json:"features"`
	Images        StringList `json:"images"`
	Status        Text       `json:"status"`
}

// First returns the first non-blank of the given fields.
func First(fields ...Text) string {
	for _, f := range fields {
		if !f.IsZero() {
			return f.String()
		}
	}
	return ""
}

// Available reports whether the record passes the status filter: a
// missing status counts as available.
func (v *Vehicle) Available() bool {
	s := strings.ToLower(v.Status.String())
	return s == "" || s == "available"
}

// Load reads and parses the inventory feed. The top-level document must
// carry a "vehicles" array; a missing or non-array field is a hard error
// so a broken export never silently generates an empty site.
func Load(path string) ([]Vehicle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inventory %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes an inventory document. name is used in error messages.
func Parse(data []byte, name string) ([]Vehicle, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse inventory %s: %w", name, err)
	}
	raw, ok := doc["vehicles"]
	if !ok {
		return nil, fmt.Errorf("inventory %s: missing \"vehicles\" field", name)
	}
	var vehicles []Vehicle
	if err := json.Unmarshal(raw, &vehicles); err != nil {
		return nil, fmt.Errorf("inventory %s: \"vehicles\" is not a list of records: %w", name, err)
	}
	return vehicles, nil
}

// Select applies the configured record-selection policy. With
// filterStatus false every record passes (the policy the original site
// ran with); with filterStatus true only available records pass.
func Select(vehicles []Vehicle, filterStatus bool) []Vehicle {
	if !filterStatus {
		return vehicles
	}
	out := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Available() {
			out = append(out, v)
		}
	}
	return out
}
