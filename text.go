package webseo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Text is a scalar configuration value substituted into the template.
// Strings, numbers and booleans all decode into their string form. Null,
// false and numeric zero decode as "", the same as an absent field.
type Text string

func (t Text) String() string { return string(t) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")), bytes.Equal(b, []byte("false")):
		*t = ""
	case bytes.Equal(b, []byte("true")):
		*t = "true"
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		return t.setNumber(string(b))
	default:
		return fmt.Errorf("cannot use %s as a text value", b)
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Text) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: cannot use a YAML collection as a text value", value.Line)
	}
	switch value.ShortTag() {
	case "!!null":
		*t = ""
	case "!!bool":
		var v bool
		if err := value.Decode(&v); err != nil {
			return err
		}
		*t = ""
		if v {
			*t = "true"
		}
	case "!!int", "!!float":
		return t.setNumber(value.Value)
	default:
		*t = Text(value.Value)
	}
	return nil
}

func (t *Text) setNumber(raw string) error {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", raw, err)
	}
	if f == 0 {
		*t = ""
		return nil
	}
	*t = Text(raw)
	return nil
}
