package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

// ParseResult is the outcome of reading an import file.
type ParseResult struct {
	Scripts []domain.ScriptFields
	// Skipped counts data rows missing a title or content.
	Skipped int
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	res, err := Parse(f)
	if err != nil {
		return ParseResult{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return res, nil
}

// Parse reads a two-column CSV: the header row is skipped, the first column
// is the title and the second the content. Extra columns are ignored. The
// description is the first 150 characters of the content and tags are empty.
func Parse(r io.Reader) (ParseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var res ParseResult

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		return res, fmt.Errorf("read header: %w", err)
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("read row: %w", err)
		}

		if len(record) < 2 {
			res.Skipped++
			continue
		}

		title := strings.TrimSpace(record[0])
		content := strings.TrimSpace(record[1])
		if title == "" || content == "" {
			res.Skipped++
			continue
		}

		res.Scripts = append(res.Scripts, domain.ScriptFields{
			Title:       title,
			Tags:        []string{},
			Description: domain.TruncateDescription(content),
			Content:     content,
		})
	}

	return res, nil
}
