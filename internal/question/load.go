package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDocument reads, parses, and validates a question import file.
// Files ending in .json are parsed as JSON, everything else as YAML.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read question file: %w", err)
	}
	doc, err := parseDocument(data, path)
	if err != nil {
		return Document{}, err
	}
	return NormalizeDocument(doc)
}

// NormalizeDocument normalizes every record and validates the whole document.
func NormalizeDocument(doc Document) (Document, error) {
	collector := &issueCollector{}
	if len(doc.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}
	for i, record := range doc.Questions {
		record = Normalize(record)
		if err := Validate(record); err != nil {
			prefixed := err.(*ValidationError).Prefixed(fmt.Sprintf("questions[%d]", i))
			collector.issues = append(collector.issues, prefixed.Issues...)
		}
		doc.Questions[i] = record
	}
	if err := collector.result(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func parseDocument(data []byte, path string) (Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSONDocument(data)
	}
	return parseYAMLDocument(data)
}

func parseJSONDocument(data []byte) (Document, error) {
	var doc Document
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Document{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Document{}, fmt.Errorf("parse json: %w", err)
	}
	return doc, nil
}

func parseYAMLDocument(data []byte) (Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Document{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Document{}, fmt.Errorf("parse yaml: %w", err)
	}
	return doc, nil
}
