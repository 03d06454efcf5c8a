package assessment

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrFileNotFound is returned when the assessment path is not a regular file.
	ErrFileNotFound = errors.New("file not found")
	// ErrMissingColumn is returned when the header lacks question_id.
	ErrMissingColumn = errors.New("CSV must have header with question_id, is_applicable, score, comment")
	// ErrNoRows is returned when no row carries a question id.
	ErrNoRows = errors.New("no valid rows in CSV")
)

// Load reads an assessment CSV and computes its SHA-256 hash.
func Load(path string) (*Sheet, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("assessment.Load: %s: %w", path, ErrFileNotFound)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assessment.Load: %w", err)
	}
	records, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assessment.Load: %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("assessment.Load: %s: %w", path, ErrNoRows)
	}
	h := sha256.Sum256(data)
	return &Sheet{
		Path:    path,
		Hash:    fmt.Sprintf("sha256:%x", h),
		Records: records,
	}, nil
}

// Parse reads CSV rows into records in input order. Rows with an empty
// question_id are skipped. An empty result is not an error here; Load
// treats it as one.
func Parse(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingColumn
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := indexHeader(header)
	if _, ok := cols[ColumnQuestionID]; !ok {
		return nil, ErrMissingColumn
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		rec, ok := parseRow(cols, row)
		if !ok {
			continue
		}
		rec.Line = line
		records = append(records, rec)
	}
	return records, nil
}

func indexHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

func parseRow(cols map[string]int, row []string) (Record, bool) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	qid := field(ColumnQuestionID)
	if qid == "" {
		return Record{}, false
	}

	rec := Record{
		QuestionID: qid,
		Applicable: applicableTokens[strings.ToLower(field(ColumnApplicable))],
		Score:      parseScore(field(ColumnScore)),
		Comment:    field(ColumnComment),
	}
	if rec.Applicable && (rec.Score == nil || !validScore(*rec.Score)) {
		rec.Score = nil
	}
	return rec, true
}

// parseScore returns nil for empty or non-integer input.
func parseScore(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
