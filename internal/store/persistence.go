package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeAtomic replaces path with payload using a temp file and rename.
func writeAtomic(path string, payload []byte) error {
	if path == "" {
		return fmt.Errorf("question bank path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create bank directory: %w", err)
	}
	tmpPath := path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	_, writeErr := file.Write(payload)
	syncErr := file.Sync()
	closeErr := file.Close()
	if writeErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if syncErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", syncErr)
	}
	if closeErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace question bank: %w", err)
	}
	return nil
}

// appendLine adds line to the end of path without touching existing bytes.
// A separator is written first when the file does not end in a newline.
func appendLine(path string, line []byte) error {
	if path == "" {
		return fmt.Errorf("question bank path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create bank directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open question bank: %w", err)
	}
	needsNewline, err := lacksTrailingNewline(file)
	if err != nil {
		_ = file.Close()
		return err
	}
	payload := line
	if needsNewline {
		payload = append([]byte{'\n'}, line...)
	}
	_, writeErr := file.Write(payload)
	syncErr := file.Sync()
	closeErr := file.Close()
	if writeErr != nil {
		return fmt.Errorf("append record: %w", writeErr)
	}
	if syncErr != nil {
		return fmt.Errorf("sync question bank: %w", syncErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close question bank: %w", closeErr)
	}
	return nil
}

func lacksTrailingNewline(file *os.File) (bool, error) {
	info, err := file.Stat()
	if err != nil {
		return false, fmt.Errorf("stat question bank: %w", err)
	}
	if info.Size() == 0 {
		return false, nil
	}
	last := make([]byte, 1)
	if _, err := file.ReadAt(last, info.Size()-1); err != nil && err != io.EOF {
		return false, fmt.Errorf("read question bank: %w", err)
	}
	return last[0] != '\n', nil
}
