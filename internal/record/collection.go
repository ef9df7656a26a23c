package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/google/renameio/v2"
)

const indent = "  "

// ReadCollection loads a JSON array of records from path.
//
// A missing or empty file is an empty collection, not an error. The boolean
// reports whether the file existed with content.
func ReadCollection(path string) (Collection, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Collection{}, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to read collection %s: %w", path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return Collection{}, false, nil
	}

	c, err := DecodeCollection(data)
	if err != nil {
		return nil, true, fmt.Errorf("failed to parse collection %s: %w", path, err)
	}

	return c, true, nil
}

// DecodeCollection parses a JSON array of objects.
func DecodeCollection(data []byte) (Collection, error) {
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}

	for i, r := range c {
		if r == nil {
			return nil, fmt.Errorf("%w: element %d is null", ErrInvalidRecord, i)
		}
	}

	if c == nil {
		c = Collection{}
	}

	return c, nil
}

// EncodeCollection writes c as an indented JSON array followed by a newline.
// Non-ASCII and HTML characters are written literally.
func EncodeCollection(w io.Writer, c Collection) error {
	if c == nil {
		c = Collection{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)

	return enc.Encode(c)
}

// WriteCollection atomically replaces path with the encoded collection.
// On any error the previous file content is left untouched.
func WriteCollection(path string, c Collection) (err error) {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("failed to create pending file for %s: %w", path, err)
	}

	defer func() {
		if cerr := pending.Cleanup(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to clean up pending file for %s: %w", path, cerr)
		}
	}()

	if err := EncodeCollection(pending, c); err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", path, err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}

// IDs returns the ids of the collection in order.
func (c Collection) IDs() []string {
	ids := make([]string, len(c))
	for i, r := range c {
		ids[i] = r.ID()
	}

	return ids
}

// Clone deep-copies every record.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	for i, r := range c {
		out[i] = r.Clone()
	}

	return out
}
