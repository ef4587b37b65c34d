// Package store persists address-book records as JSON files.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/afk552/people/internal/person"
)

// Sentinel errors for caller-checkable conditions.
var (
	// ErrParse indicates an existing data file could not be decoded.
	ErrParse = errors.New("store: malformed data file")
	// ErrNotSaved indicates Save declined to write, see the diagnostics output.
	ErrNotSaved = errors.New("store: records not saved")
)

// Extension is the only file extension the store reads or writes.
const Extension = ".json"

// record is the on-disk shape of a person.
type record struct {
	Name    string `json:"name"`
	Pnumber string `json:"pnumber"`
	Birth   string `json:"birth"`
}

// FileStore loads and saves record collections. Recoverable problems (wrong
// extension, missing file) are reported as one-line diagnostics to diag.
type FileStore struct {
	diag io.Writer
}

// NewFileStore creates a FileStore that writes diagnostics to diag.
// A nil diag discards them.
func NewFileStore(diag io.Writer) *FileStore {
	if diag == nil {
		diag = io.Discard
	}
	return &FileStore{diag: diag}
}

// Load reads the people stored at path.
//
// A path without the .json extension, or one that does not exist, yields an
// empty collection and a diagnostic, not an error. Malformed JSON or a birth
// date that is not dd.mm.yyyy returns an error wrapping ErrParse.
func (s *FileStore) Load(path string) ([]person.Person, error) {
	if !hasExtension(path) {
		_, _ = fmt.Fprintf(s.diag, "file format is not %s: %s\n", Extension, path)
		return []person.Person{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			_, _ = fmt.Fprintf(s.diag, "file does not exist: %s\n", path)
			return []person.Person{}, nil
		}
		return nil, fmt.Errorf("store: reading %s: %w", path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	people := make([]person.Person, 0, len(records))
	for i, r := range records {
		birth, err := person.ParseDate(r.Birth)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: entry %d: %v", ErrParse, path, i+1, err)
		}
		people = append(people, person.Person{Name: r.Name, Pnumber: r.Pnumber, Birth: birth})
	}
	return people, nil
}

// Save overwrites path with people as an indented JSON array.
// It reports false with a diagnostic, and writes nothing, when path does not
// have the .json extension. The caller's slice is never modified.
func (s *FileStore) Save(path string, people []person.Person) (bool, error) {
	if !hasExtension(path) {
		_, _ = fmt.Fprintf(s.diag, "refusing to save, file format is not %s: %s\n", Extension, path)
		return false, nil
	}

	snapshot := person.CloneAll(people)
	records := make([]record, 0, len(snapshot))
	for _, p := range snapshot {
		records = append(records, record{Name: p.Name, Pnumber: p.Pnumber, Birth: p.Birth.String()})
	}

	data, err := encode(records)
	if err != nil {
		return false, fmt.Errorf("store: marshaling: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("store: writing %s: %w", path, err)
	}
	return true, nil
}

// encode renders records as UTF-8 JSON with a four-space indent. Non-ASCII
// text and HTML characters are written as-is.
func encode(records []record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func hasExtension(path string) bool {
	return filepath.Ext(path) == Extension
}
