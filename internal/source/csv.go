package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/schema"
)

// recordFields is the number of columns in a source line: state,sex,year,name,count.
const recordFields = 5

// dataExtensions lists the file extensions read from a csv directory.
var dataExtensions = map[string]struct{}{
	".txt": {},
	".csv": {},
}

// CSVSource reads headerless state,sex,year,name,count lines from a file or
// every .txt/.csv file of a directory.
type CSVSource struct {
	Path   string
	Strict bool // return the first malformed line as an error instead of skipping it
}

var _ contract.RecordSource = &CSVSource{} // Compile-time check

// Describe implements the RecordSource interface.
func (s *CSVSource) Describe() (schema.SourceBackend, string) {
	return schema.CSVSource, s.Path
}

// Load implements the RecordSource interface.
func (s *CSVSource) Load(ctx context.Context) ([]schema.Record, schema.LoadStats, error) {
	stats := schema.LoadStats{Backend: schema.CSVSource, Location: s.Path}

	files, skipped, err := listDataFiles(s.Path)
	if err != nil {
		return nil, stats, err
	}
	stats.FilesSkipped = skipped

	var records []schema.Record
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		records, err = s.loadFile(file, records, &stats)
		if err != nil {
			return nil, stats, err
		}
		stats.FilesRead++
	}
	stats.Records = len(records)
	return records, stats, nil
}

// listDataFiles returns the files to read under path and how many directory entries were skipped.
func listDataFiles(path string) ([]string, int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, fmt.Errorf("cannot read data path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, 0, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, 0, fmt.Errorf("cannot list data directory %s: %w", path, err)
	}
	var files []string
	skipped := 0
	for _, entry := range entries {
		_, ok := dataExtensions[strings.ToLower(filepath.Ext(entry.Name()))]
		if !entry.Type().IsRegular() || !ok {
			skipped++
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	return files, skipped, nil
}

// loadFile appends the records of one file to records.
func (s *CSVSource) loadFile(path string, records []schema.Record, stats *schema.LoadStats) ([]schema.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return records, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		stats.LinesRead++

		var rec schema.Record
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			err = &schema.MalformedRecordError{Source: path, Line: parseErr.Line, Fields: append([]string(nil), fields...), Reason: parseErr.Err.Error()}
		} else if err != nil {
			return records, fmt.Errorf("cannot read %s: %w", path, err)
		} else {
			line, _ := reader.FieldPos(0)
			rec, err = parseRecord(path, line, fields)
		}

		if err != nil {
			if s.Strict {
				return records, err
			}
			stats.LinesSkipped++
			contract.LogWarn("Skipping line", err)
			continue
		}
		records = append(records, rec)
	}
}

// parseRecord converts the fields of one line into a Record.
func parseRecord(path string, line int, fields []string) (schema.Record, error) {
	malformed := func(reason string) error {
		return &schema.MalformedRecordError{Source: path, Line: line, Fields: append([]string(nil), fields...), Reason: reason}
	}
	if len(fields) != recordFields {
		return schema.Record{}, malformed(fmt.Sprintf("expected %d fields, got %d", recordFields, len(fields)))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	year, err := strconv.Atoi(fields[2])
	if err != nil || year < 0 {
		return schema.Record{}, malformed("year is not a non-negative integer")
	}
	count, err := strconv.Atoi(fields[4])
	if err != nil || count < 0 {
		return schema.Record{}, malformed("count is not a non-negative integer")
	}
	return schema.Record{
		State: fields[0],
		Sex:   schema.Sex(fields[1]),
		Year:  year,
		Name:  fields[3],
		Count: count,
	}, nil
}
