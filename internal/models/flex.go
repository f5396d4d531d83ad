// internal/models/flex.go
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The legacy record shapes are inconsistent: wage appears as a number or a
// string ("120" / "1,200"), skills as an array or a comma-separated string,
// dates as "2006-01-02" or full RFC3339. These types absorb every shape at
// the store boundary so the scoring layer only ever sees one canon.

// FlexFloat decodes a JSON number or a numeric string.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*f = 0
		return nil
	case float64:
		*f = FlexFloat(v)
		return nil
	case string:
		cleaned := strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
		if cleaned == "" {
			*f = 0
			return nil
		}
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", v)
		}
		*f = FlexFloat(parsed)
		return nil
	default:
		return fmt.Errorf("not a number: %T", raw)
	}
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// SkillList decodes either an explicit JSON array of tags or a single
// delimited string. Tag normalization (case, trimming, splitting on every
// delimiter) is the scoring layer's job; this only lifts the value into a
// slice shape.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*s = nil
		return nil
	case string:
		if strings.TrimSpace(v) == "" {
			*s = nil
			return nil
		}
		*s = SkillList{v}
		return nil
	case []interface{}:
		out := make(SkillList, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return fmt.Errorf("skill tag is not a string: %T", item)
			}
			out = append(out, str)
		}
		*s = out
		return nil
	default:
		return fmt.Errorf("skills is neither list nor string: %T", raw)
	}
}

// FlexDate decodes "2006-01-02" or RFC3339 timestamps. The date-only form
// is what the legacy records carry.
type FlexDate struct {
	time.Time
}

const dateOnly = "2006-01-02"

func (d *FlexDate) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(dateOnly, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("unrecognized date %q", raw)
	}
	d.Time = t
	return nil
}

func (d FlexDate) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Time.Format(dateOnly))
}

// NewDate builds a FlexDate from a date-only string, for fixtures and
// store scanning. Invalid input yields nil.
func NewDate(raw string) *FlexDate {
	t, err := time.Parse(dateOnly, strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &FlexDate{Time: t}
}
