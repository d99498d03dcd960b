package duckdb

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"quizbank/internal/question"
)

// Fingerprint returns a SHA-256 hex digest of the record content.
// The identifier is excluded so identical questions share a fingerprint.
func Fingerprint(record question.Record) (string, error) {
	payload := map[string]interface{}{
		"question": record.Question,
		"choices":  record.Choices,
		"answer":   record.Answer,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}
