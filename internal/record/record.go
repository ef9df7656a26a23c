package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Well-known card fields.
const (
	FieldID              = "id"
	FieldName            = "name"
	FieldType            = "type"
	FieldCost            = "cost"
	FieldDescription     = "description"
	FieldImage           = "image"
	FieldUnique          = "unique"
	FieldFaction         = "faction"
	FieldInitiative      = "initiative"
	FieldEnergy          = "energy"
	FieldRecurringEnergy = "recurringEnergy"
)

// ErrInvalidRecord is returned by Validate for records without an id or name.
var ErrInvalidRecord = errors.New("invalid record")

// Record is a single card: an ordered mapping of field name to raw JSON value.
type Record struct {
	fields *orderedmap.OrderedMap[string, json.RawMessage]
}

// Collection is an ordered sequence of records persisted as one JSON array.
type Collection []*Record

// New creates an empty record.
func New() *Record {
	return &Record{fields: orderedmap.New[string, json.RawMessage]()}
}

// Parse decodes a single JSON object into a record.
func Parse(data []byte) (*Record, error) {
	r := New()
	if err := r.UnmarshalJSON(data); err != nil {
		return nil, err
	}

	return r, nil
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return r.fields.Len()
}

// Keys returns the field names in order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

// Has reports whether the field is present. A field holding JSON null is present.
func (r *Record) Has(key string) bool {
	_, ok := r.fields.Get(key)
	return ok
}

// Raw returns the compact JSON encoding of a field.
func (r *Record) Raw(key string) (json.RawMessage, bool) {
	raw, ok := r.fields.Get(key)
	if !ok {
		return nil, false
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw, true
	}

	return buf.Bytes(), true
}

// String returns a string field. Missing or non-string fields yield "", false.
func (r *Record) String(key string) (string, bool) {
	raw, ok := r.fields.Get(key)
	if !ok {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}

	return s, true
}

// Number returns a numeric field. Missing or non-numeric fields yield 0, false.
func (r *Record) Number(key string) (float64, bool) {
	raw, ok := r.fields.Get(key)
	if !ok {
		return 0, false
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}

	return n, true
}

// Value decodes a field into a generic Go value (string, float64, bool, nil,
// []any or map[string]any).
func (r *Record) Value(key string) (any, bool) {
	raw, ok := r.fields.Get(key)
	if !ok {
		return nil, false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}

	return v, true
}

// ID returns the "id" field.
func (r *Record) ID() string {
	s, _ := r.String(FieldID)
	return s
}

// Name returns the "name" field.
func (r *Record) Name() string {
	s, _ := r.String(FieldName)
	return s
}

// Type returns the "type" field.
func (r *Record) Type() string {
	s, _ := r.String(FieldType)
	return s
}

// Set stores value under key. Existing keys keep their position, new keys are
// appended.
func (r *Record) Set(key string, value any) error {
	raw, err := encodeValue(value)
	if err != nil {
		return fmt.Errorf("failed to encode field %q: %w", key, err)
	}

	r.fields.Set(key, raw)

	return nil
}

// SetID replaces the "id" field in place.
func (r *Record) SetID(id string) {
	// strings always encode
	_ = r.Set(FieldID, id)
}

// Delete removes a field. It reports whether the field was present.
func (r *Record) Delete(key string) bool {
	_, ok := r.fields.Delete(key)
	return ok
}

// Clone returns a deep copy.
func (r *Record) Clone() *Record {
	c := New()
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		c.fields.Set(pair.Key, append(json.RawMessage(nil), pair.Value...))
	}

	return c
}

// Validate checks that the record has a non-empty string id and name.
func Validate(r *Record) error {
	if r == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if id, ok := r.String(FieldID); !ok || id == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}

	if name, ok := r.String(FieldName); !ok || name == "" {
		return fmt.Errorf("%w: missing name for id %q", ErrInvalidRecord, r.ID())
	}

	return nil
}

// MarshalJSON writes the fields in order. HTML characters are not escaped.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	first := true

	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			buf.WriteByte(',')
		}

		first = false

		key, err := encodeValue(pair.Key)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(pair.Value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping field order.
func (r *Record) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: expected a JSON object", ErrInvalidRecord)
	}

	fields := orderedmap.New[string, json.RawMessage]()
	if err := fields.UnmarshalJSON(trimmed); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}

	r.fields = fields

	return nil
}

// encodeValue marshals v without HTML escaping and without the trailing
// newline json.Encoder adds.
func encodeValue(v any) (json.RawMessage, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
