package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Itinerary is the ordered day → slot → item structure of a plan. On the
// wire it is a JSON object of objects; the service's key order is the
// display order, so the standard map decoding (which discards order) is not
// usable here. Decoding walks the token stream instead.
type Itinerary []Day

// Day is one day of the itinerary. Key is the wire key ("day_1"); Slots
// preserve the order the service returned them in.
type Day struct {
	Key   string
	Slots []Slot
}

// Slot is a named time-of-day segment that may or may not have an assigned
// item. A nil Item means the slot is unfilled.
type Slot struct {
	Name string
	Item *Item
}

// Day returns the day with the given key, or nil when absent.
func (it Itinerary) Day(key string) *Day {
	for i := range it {
		if it[i].Key == key {
			return &it[i]
		}
	}
	return nil
}

// Slot returns the named slot, or nil when absent.
func (d *Day) Slot(name string) *Slot {
	if d == nil {
		return nil
	}
	for i := range d.Slots {
		if d.Slots[i].Name == name {
			return &d.Slots[i]
		}
	}
	return nil
}

// UnmarshalJSON decodes the itinerary object preserving key order.
// JSON null decodes to an empty itinerary.
func (it *Itinerary) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("itinerary: %w", err)
	}
	if tok == nil {
		*it = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("itinerary: expected object, got %v", tok)
	}

	days := make(Itinerary, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("itinerary: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("itinerary: expected day key, got %v", keyTok)
		}

		slots, err := decodeSlots(dec)
		if err != nil {
			return fmt.Errorf("itinerary: day %q: %w", key, err)
		}
		days = append(days, Day{Key: key, Slots: slots})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("itinerary: %w", err)
	}

	*it = days
	return nil
}

// decodeSlots reads one day's slot object from the decoder, preserving slot
// order. A null day yields no slots.
func decodeSlots(dec *json.Decoder) ([]Slot, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var slots []Slot
	for dec.More() {
		nameTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := nameTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected slot name, got %v", nameTok)
		}

		// A null slot value leaves Item nil; unknown item fields are dropped.
		var item *Item
		if err := dec.Decode(&item); err != nil {
			return nil, fmt.Errorf("slot %q: %w", name, err)
		}
		slots = append(slots, Slot{Name: name, Item: item})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return slots, nil
}

// MarshalJSON encodes the itinerary back into the wire object shape, in the
// same order it was decoded.
func (it Itinerary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, day := range it {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(day.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteByte('{')

		for j, slot := range day.Slots {
			if j > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(slot.Name)
			if err != nil {
				return nil, err
			}
			buf.Write(name)
			buf.WriteByte(':')
			item, err := json.Marshal(slot.Item)
			if err != nil {
				return nil, err
			}
			buf.Write(item)
		}
		buf.WriteByte('}')
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
