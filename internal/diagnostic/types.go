package diagnostic

import (
	"fmt"
	"strings"
)

// Diagnostic codes.
const (
	CodeFileSkipped        = "file_skipped"
	CodeRecordInvalid      = "record_invalid"
	CodeRecordFiltered     = "record_filtered"
	CodeRecordDuplicate    = "record_duplicate"
	CodeIDRenamed          = "id_renamed"
	CodeIDConflict         = "id_conflict"
	CodeRecordMoved        = "record_moved"
	CodeTypeUnpartitioned  = "type_unpartitioned"
	CodeDestinationInvalid = "destination_invalid"
	CodeWriteFailed        = "write_failed"
)

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// File is the input or output file this relates to (if any).
	File string
	// RecordID identifies which record this relates to (if any).
	RecordID string
}

//go:generate go tool stringer -type=Severity -linecomment -output=severity_string.go

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo    Severity = iota // info
	SeverityWarning                 // warning
	SeverityError                   // error
)

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, file, recordID string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		File:     file,
		RecordID: recordID,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, file, recordID string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		File:     file,
		RecordID: recordID,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, file, recordID string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		File:     file,
		RecordID: recordID,
	})
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Count returns how many diagnostics carry the given code.
func (d *Diagnostics) Count(code string) int {
	n := 0

	for _, diag := range d.All() {
		if diag.Code == code {
			n++
		}
	}

	return n
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.File != "" {
		prefix = append(prefix, "["+d.File+"]")
	}

	if d.RecordID != "" {
		prefix = append(prefix, d.RecordID)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
