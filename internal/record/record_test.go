package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeepsFieldOrder(t *testing.T) {
	r, err := Parse([]byte(`{"name":"Bob","id":"x-ability","zeta":1,"alpha":{"b":1,"a":2}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "id", "zeta", "alpha"}, r.Keys())
	assert.Equal(t, "x-ability", r.ID())
	assert.Equal(t, "Bob", r.Name())

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Bob","id":"x-ability","zeta":1,"alpha":{"b":1,"a":2}}`, string(out))
	assert.Equal(t, `{"name":"Bob","id":"x-ability","zeta":1,"alpha":{"b":1,"a":2}}`, string(out))
}

func TestParseRejectsNonObjects(t *testing.T) {
	for _, input := range []string{`[]`, `"x"`, `12`, ``, `null`} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse([]byte(input))
			require.Error(t, err)
		})
	}
}

func TestTypedAccessors(t *testing.T) {
	r, err := Parse([]byte(`{"id":"a","cost":15,"unique":true,"energy":null,"type":7}`))
	require.NoError(t, err)

	cost, ok := r.Number(FieldCost)
	assert.True(t, ok)
	assert.InDelta(t, 15.0, cost, 0)

	_, ok = r.Number(FieldID)
	assert.False(t, ok, "string is not a number")

	_, ok = r.String(FieldType)
	assert.False(t, ok, "number is not a string")
	assert.Empty(t, r.Type())

	assert.True(t, r.Has(FieldEnergy), "null is present")
	assert.False(t, r.Has(FieldRecurringEnergy))

	v, ok := r.Value(FieldUnique)
	assert.True(t, ok)
	assert.Equal(t, true, v)

	raw, ok := r.Raw(FieldCost)
	assert.True(t, ok)
	assert.Equal(t, "15", string(raw))
}

func TestSetAppendsAndReplacesInPlace(t *testing.T) {
	r := New()
	require.NoError(t, r.Set(FieldID, "old"))
	require.NoError(t, r.Set(FieldName, "Han <Solo> & Chewie"))
	require.NoError(t, r.Set(FieldCost, 10))

	r.SetID("new")

	assert.Equal(t, []string{FieldID, FieldName, FieldCost}, r.Keys())
	assert.Equal(t, "new", r.ID())

	out, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"id":"new","name":"Han <Solo> & Chewie","cost":10}`, string(out))

	assert.True(t, r.Delete(FieldCost))
	assert.False(t, r.Delete(FieldCost))
	assert.Equal(t, 2, r.Len())
}

func TestClone(t *testing.T) {
	r, err := Parse([]byte(`{"id":"a","name":"A"}`))
	require.NoError(t, err)

	c := r.Clone()
	c.SetID("b")

	assert.Equal(t, "a", r.ID())
	assert.Equal(t, "b", c.ID())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", `{"id":"a","name":"A"}`, false},
		{"missing id", `{"name":"A"}`, true},
		{"empty id", `{"id":"","name":"A"}`, true},
		{"numeric id", `{"id":1,"name":"A"}`, true},
		{"missing name", `{"id":"a"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse([]byte(tt.input))
			require.NoError(t, err)

			err = Validate(r)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRecord)
			} else {
				require.NoError(t, err)
			}
		})
	}

	require.ErrorIs(t, Validate(nil), ErrInvalidRecord)
}
