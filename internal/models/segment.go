package models

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// CarrierKey is the JSON key under which a segment's carrier id is emitted.
const CarrierKey = "Carrier_id"

// Attributes is an insertion-ordered string map. Setting an existing key
// replaces its value in place.
type Attributes struct {
	keys   []string
	values map[string]string
}

func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]string)}
}

func (a *Attributes) Set(key, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, exists := a.values[key]; !exists {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

func (a *Attributes) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a.values[key]
	return v, ok
}

func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, len(a.keys))
	copy(keys, a.keys)
	return keys
}

// FlightSegment is one leg of a direction. The fare basis is never stored
// here; it belongs to the variant.
type FlightSegment struct {
	CarrierID  string
	Attributes *Attributes
}

func (s FlightSegment) Get(key string) (string, bool) {
	return s.Attributes.Get(key)
}

// MarshalJSON writes the carrier id first, followed by the leg attributes
// in document order.
func (s FlightSegment) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writePair(&buf, CarrierKey, s.CarrierID); err != nil {
		return nil, err
	}
	for _, k := range s.Attributes.Keys() {
		v, _ := s.Attributes.Get(k)
		buf.WriteByte(',')
		if err := writePair(&buf, k, v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *FlightSegment) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("flight segment: expected object, got %v", tok)
	}

	attrs := NewAttributes()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var value *string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("flight segment: key %q: %w", key, err)
		}
		v := ""
		if value != nil {
			v = *value
		}

		if key == CarrierKey {
			s.CarrierID = v
			continue
		}
		attrs.Set(key, v)
	}
	s.Attributes = attrs
	return nil
}

func writePair(buf *bytes.Buffer, key, value string) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}
