package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/schema"
)

// PrintDatasetStatus outputs dataset statistics, dispatching based on the output format configured.
func PrintDatasetStatus(status schema.DatasetStatus, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON status")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"field", "value"}, func(cw *csv.Writer) error {
				return cw.WriteAll(datasetStatusFields(status))
			})
		}, "Wrote CSV status")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for dataset status; use dataset convert")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			for _, field := range datasetStatusFields(status) {
				if _, err := fmt.Fprintf(w, "%s: %s\n", field[0], field[1]); err != nil {
					return err
				}
			}
			return nil
		}, "Wrote status")
	}
}

// datasetStatusFields lists the status as ordered label/value pairs.
func datasetStatusFields(status schema.DatasetStatus) [][]string {
	years := "-"
	if !status.Years.IsZero() {
		years = status.Years.String()
	}
	return [][]string{
		{"Source Backend", string(status.Backend)},
		{"Location", status.Location},
		{"Files Read", strconv.Itoa(status.FilesRead)},
		{"Files Skipped", strconv.Itoa(status.FilesSkipped)},
		{"Lines Read", strconv.Itoa(status.LinesRead)},
		{"Lines Skipped", strconv.Itoa(status.LinesSkipped)},
		{"Records", strconv.Itoa(status.Records)},
		{"Distinct Names", strconv.Itoa(status.DistinctNames)},
		{"States", strconv.Itoa(status.States)},
		{"Years", years},
		{"Female Births", strconv.Itoa(status.FemaleTotal)},
		{"Male Births", strconv.Itoa(status.MaleTotal)},
		{"Other Births", strconv.Itoa(status.OtherTotal)},
	}
}
