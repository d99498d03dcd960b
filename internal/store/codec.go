package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"quizbank/internal/question"
)

// recordSchemaJSON describes the shape of one persisted line.
//
//go:embed record.schema.json
var recordSchemaJSON string

var recordSchema = jsonschema.MustCompileString("record.schema.json", recordSchemaJSON)

// legacyNamespace seeds identifiers for lines written without an id.
var legacyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("quizbank:legacy-record"))

// errInvalidUTF8 marks a line that encoding/json would silently repair.
var errInvalidUTF8 = errors.New("line is not valid UTF-8")

// decodeLine parses one non-blank line into a well-formed record.
func decodeLine(line []byte) (question.Record, error) {
	if !utf8.Valid(line) {
		return question.Record{}, errInvalidUTF8
	}
	var raw interface{}
	if err := json.Unmarshal(line, &raw); err != nil {
		return question.Record{}, fmt.Errorf("parse json: %w", err)
	}
	if err := recordSchema.Validate(raw); err != nil {
		return question.Record{}, fmt.Errorf("invalid record shape: %w", err)
	}
	var record question.Record
	if err := json.Unmarshal(line, &record); err != nil {
		return question.Record{}, fmt.Errorf("decode record: %w", err)
	}
	if err := question.Validate(record); err != nil {
		return question.Record{}, err
	}
	return record, nil
}

// encodeRecord renders a record as a single newline-terminated line.
func encodeRecord(record question.Record) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(record); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return buf.Bytes(), nil
}

// legacyID derives a stable identifier for a line that carries none.
// occurrence disambiguates byte-identical lines.
func legacyID(line []byte, occurrence int) string {
	name := make([]byte, 0, len(line)+8)
	name = append(name, line...)
	name = append(name, '#')
	name = strconv.AppendInt(name, int64(occurrence), 10)
	return uuid.NewSHA1(legacyNamespace, name).String()
}
