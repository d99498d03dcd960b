// Package store persists the question bank as line-delimited JSON.
//
// A Store is the only writer of its file. Every read is a full re-read and
// every destructive write is a full atomic rewrite; there is no locking, so two
// processes editing the same bank concurrently can lose an update.
package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/google/uuid"

	"quizbank/internal/question"
)

// maxLineBytes bounds a single persisted record.
const maxLineBytes = 1 << 20

// minPrefixLen is the shortest identifier prefix Resolve accepts.
const minPrefixLen = 4

// Store owns a question bank file.
type Store struct {
	path  string
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides how identifiers are assigned to new records.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New returns a Store backed by the file at path.
func New(path string, opts ...Option) *Store {
	s := &Store{path: path, newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every record in file order. A missing or empty file yields no
// records. The first malformed line aborts the load with a *CorruptDataError.
func (s *Store) Load() ([]question.Record, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []question.Record{}, nil
		}
		return nil, fmt.Errorf("open question bank: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	records := []question.Record{}
	seenIDs := map[string]int{}
	legacyCounts := map[string]int{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		record, err := decodeLine(line)
		if err != nil {
			return nil, &CorruptDataError{Path: s.path, Line: lineNo, Err: err}
		}
		if record.ID == "" {
			key := string(line)
			record.ID = legacyID(line, legacyCounts[key])
			legacyCounts[key]++
		}
		if first, dup := seenIDs[record.ID]; dup {
			return nil, &CorruptDataError{
				Path: s.path,
				Line: lineNo,
				Err:  fmt.Errorf("duplicate id %q (first seen on line %d)", record.ID, first),
			}
		}
		seenIDs[record.ID] = lineNo
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, &CorruptDataError{Path: s.path, Line: lineNo + 1, Err: err}
	}
	return records, nil
}

// Append validates a record and adds it as one new line at the end of the
// file. Existing lines are never rewritten. The record is normalized first
// (text trimmed, answer lowercased) and gets an identifier when it has none,
// so a later Load returns the normalized record, not the raw input. The
// stored record is returned.
func (s *Store) Append(r question.Record) (question.Record, error) {
	record := question.Normalize(r)
	if err := question.Validate(record); err != nil {
		return question.Record{}, err
	}
	existing, err := s.Load()
	if err != nil {
		return question.Record{}, err
	}
	if record.ID == "" {
		record.ID = s.newID()
	}
	if indexOf(existing, record.ID) >= 0 {
		return question.Record{}, &question.ValidationError{Issues: []question.Issue{{
			Field:   "id",
			Message: fmt.Sprintf("duplicate id %q", record.ID),
		}}}
	}
	line, err := encodeRecord(record)
	if err != nil {
		return question.Record{}, err
	}
	if err := appendLine(s.path, line); err != nil {
		return question.Record{}, err
	}
	return record, nil
}

// ReplaceAll rewrites the file to hold exactly records, in order. Nothing is
// written unless every record is valid.
func (s *Store) ReplaceAll(records []question.Record) error {
	prepared, err := s.prepare(records)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	for _, record := range prepared {
		line, err := encodeRecord(record)
		if err != nil {
			return err
		}
		buf.Write(line)
	}
	return writeAtomic(s.path, buf.Bytes())
}

// Get returns the record with the given identifier.
func (s *Store) Get(id string) (question.Record, error) {
	records, err := s.Load()
	if err != nil {
		return question.Record{}, err
	}
	index := indexOf(records, id)
	if index < 0 {
		return question.Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return records[index], nil
}

// Resolve finds a record by full identifier or by a unique identifier prefix.
func (s *Store) Resolve(ref string) (question.Record, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return question.Record{}, fmt.Errorf("%w: empty reference", ErrNotFound)
	}
	records, err := s.Load()
	if err != nil {
		return question.Record{}, err
	}
	if index := indexOf(records, ref); index >= 0 {
		return records[index], nil
	}
	if len(ref) < minPrefixLen {
		return question.Record{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	var matches []question.Record
	for _, record := range records {
		if strings.HasPrefix(record.ID, ref) {
			matches = append(matches, record)
		}
	}
	switch len(matches) {
	case 0:
		return question.Record{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return question.Record{}, fmt.Errorf("%w: %s matches %d questions", ErrAmbiguous, ref, len(matches))
	}
}

// Update replaces the record with the given identifier in place, keeping its
// position and identifier, in a single rewrite.
func (s *Store) Update(id string, r question.Record) (question.Record, error) {
	record := question.Normalize(r)
	record.ID = id
	if err := question.Validate(record); err != nil {
		return question.Record{}, err
	}
	records, err := s.Load()
	if err != nil {
		return question.Record{}, err
	}
	index := indexOf(records, id)
	if index < 0 {
		return question.Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	records[index] = record
	if err := s.ReplaceAll(records); err != nil {
		return question.Record{}, err
	}
	return record, nil
}

// Delete removes the record with the given identifier.
func (s *Store) Delete(id string) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	index := indexOf(records, id)
	if index < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	remaining := append(records[:index:index], records[index+1:]...)
	return s.ReplaceAll(remaining)
}

// prepare normalizes and validates records and fills in missing identifiers.
func (s *Store) prepare(records []question.Record) ([]question.Record, error) {
	prepared := make([]question.Record, 0, len(records))
	seen := map[string]int{}
	for i, r := range records {
		record := question.Normalize(r)
		if err := question.Validate(record); err != nil {
			var validationErr *question.ValidationError
			if errors.As(err, &validationErr) {
				return nil, validationErr.Prefixed(fmt.Sprintf("records[%d]", i))
			}
			return nil, err
		}
		if record.ID != "" {
			if first, dup := seen[record.ID]; dup {
				return nil, &question.ValidationError{Issues: []question.Issue{{
					Field:   fmt.Sprintf("records[%d].id", i),
					Message: fmt.Sprintf("duplicate id %q (also records[%d])", record.ID, first),
				}}}
			}
			seen[record.ID] = i
		}
		prepared = append(prepared, record)
	}
	for i := range prepared {
		if prepared[i].ID == "" {
			prepared[i].ID = s.uniqueID(seen)
			seen[prepared[i].ID] = i
		}
	}
	return prepared, nil
}

func (s *Store) uniqueID(taken map[string]int) string {
	for {
		id := s.newID()
		if _, exists := taken[id]; !exists {
			return id
		}
	}
}

func indexOf(records []question.Record, id string) int {
	for i, record := range records {
		if record.ID == id {
			return i
		}
	}
	return -1
}
