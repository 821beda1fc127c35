package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/GregMSThompson/bank-closures/internal/errs"
)

const maxLineSize = 1 << 20

// readJSONL decodes one T per non-empty line. A missing file is empty.
func readJSONL[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewFileError("open", path, err)
	}
	defer f.Close()

	var out []T
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var v T
		if err := json.Unmarshal(line, &v); err != nil {
			return nil, errs.NewDecodeError(path, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, errs.NewFileError("read", path, err)
	}
	return out, nil
}

func encodeJSONL[T any](items []T) ([]byte, error) {
	var buf bytes.Buffer
	for _, item := range items {
		b, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func writeJSONL[T any](path string, items []T) error {
	b, err := encodeJSONL(items)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errs.NewFileError("write", path, err)
	}
	return nil
}

func appendJSONL[T any](path string, item T) error {
	b, err := encodeJSONL([]T{item})
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errs.NewFileError("open", path, err)
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return errs.NewFileError("append", path, err)
	}
	if err := f.Close(); err != nil {
		return errs.NewFileError("close", path, err)
	}
	return nil
}
