package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/internal/parquet"
	"github.com/huangsam/babynames/schema"
)

// resultHeader is the CSV header shared by every ranked result.
var resultHeader = []string{
	"section",
	"category",
	"rank",
	"name",
	"female_count",
	"male_count",
	"total",
	"entropy",
	"label",
	"base_count",
	"compare_count",
	"percent",
}

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		_, _ = fmt.Fprintf(os.Stderr, "%s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// writeResultRowsCSV writes flattened result rows; null columns stay empty.
func writeResultRowsCSV(w io.Writer, rows []parquet.ResultRow, fmtFloat func(float64) string) error {
	optInt := func(v *int64) string {
		if v == nil {
			return ""
		}
		return strconv.FormatInt(*v, 10)
	}
	optFloat := func(v *float64) string {
		if v == nil {
			return ""
		}
		return fmtFloat(*v)
	}
	optString := func(v *string) string {
		if v == nil {
			return ""
		}
		return *v
	}

	return writeCSVWithHeader(w, resultHeader, func(cw *csv.Writer) error {
		for _, r := range rows {
			rec := []string{
				r.Section,
				r.Category,
				strconv.Itoa(int(r.Rank)),
				r.Name,
				optInt(r.FemaleCount),
				optInt(r.MaleCount),
				optInt(r.Total),
				optFloat(r.Entropy),
				optString(r.Label),
				optInt(r.BaseCount),
				optInt(r.CompareCount),
				optFloat(r.Percent),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeFormatted dispatches machine-readable formats. It reports false for text output,
// which each caller renders itself.
func writeFormatted(cfg *contract.Config, data any, rows func() []parquet.ResultRow) (bool, error) {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, data)
		}, "Wrote JSON"); err != nil {
			return true, fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResultRowsCSV(w, rows(), fmtFloat)
		}, "Wrote CSV"); err != nil {
			return true, fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.Write(w, rows())
		}, "Wrote Parquet"); err != nil {
			return true, fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return false, nil
	}
	return true, nil
}

// labelFor returns the ambiguity label, colored when enabled.
func labelFor(entropy float64, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(entropy)
	}
	return schema.GetAmbiguityLabel(entropy)
}

// titleFor prefixes a section title with an emoji when enabled.
func titleFor(emoji, title string, cfg *contract.Config) string {
	if cfg.UseEmojis {
		return emoji + " " + title
	}
	return title
}
