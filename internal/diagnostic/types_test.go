package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsAccumulate(t *testing.T) {
	var d Diagnostics

	d.AddInfo(CodeIDRenamed, "x-ability -> x-bob", "ace.json", "x-bob")
	d.AddWarning(CodeIDConflict, "x-bob is shared by 2 records", "ace.json", "x-bob")
	d.AddError(CodeWriteFailed, "permission denied", "ace.json", "")

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, []Severity{SeverityError, SeverityWarning, SeverityInfo},
		[]Severity{all[0].Severity, all[1].Severity, all[2].Severity})
	assert.Equal(t, 1, d.Count(CodeIDRenamed))
	assert.Equal(t, 0, d.Count(CodeFileSkipped))
	assert.Equal(t, "[ace.json]: [write_failed] permission denied", all[0].String())
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddInfo(CodeRecordMoved, "moved", "", "a")
	b.AddInfo(CodeRecordMoved, "moved", "", "b")
	b.AddWarning(CodeTypeUnpartitioned, "no output for type", "", "c")

	a.Merge(b)

	assert.Len(t, a.Infos, 2)
	assert.Len(t, a.Warnings, 1)
	assert.Equal(t, 2, a.Count(CodeRecordMoved))
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{"message only", Diagnostic{Message: "hello"}, "hello"},
		{"with code", Diagnostic{Code: "c", Message: "hello"}, "[c] hello"},
		{"with file and id", Diagnostic{Code: "c", Message: "hello", File: "f.json", RecordID: "x"}, "[f.json] x: [c] hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "Severity(7)", Severity(7).String())
}
