package outwriter

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/internal/parquet"
	"github.com/huangsam/babynames/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintPopularityResults outputs popularity rankings, dispatching based on the output format configured.
func PrintPopularityResults(results []schema.PopularityResult, cfg *contract.Config, duration time.Duration) error {
	done, err := writeFormatted(cfg, results, func() []parquet.ResultRow { return parquet.ConvertPopularity(results) })
	if done {
		return err
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if err := writePopularityTables(w, results, cfg); err != nil {
			return err
		}
		return writeFooter(w, duration)
	}, "Wrote table")
}

// PrintAmbiguityResults outputs ambiguity rankings, dispatching based on the output format configured.
func PrintAmbiguityResults(results []schema.AmbiguityResult, cfg *contract.Config, duration time.Duration) error {
	done, err := writeFormatted(cfg, results, func() []parquet.ResultRow { return parquet.ConvertAmbiguity(results) })
	if done {
		return err
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if err := writeAmbiguityTables(w, results, cfg); err != nil {
			return err
		}
		return writeFooter(w, duration)
	}, "Wrote table")
}

// writePopularityTables writes one table per metric.
func writePopularityTables(w io.Writer, results []schema.PopularityResult, cfg *contract.Config) error {
	for _, res := range results {
		title := fmt.Sprintf("Most popular names by %s births (%s)", res.Metric, res.Years)
		if err := writeSummaryTable(w, titleFor("👶", title, cfg), res.Names, cfg); err != nil {
			return err
		}
	}
	return nil
}

// writeAmbiguityTables writes one table per year range.
func writeAmbiguityTables(w io.Writer, results []schema.AmbiguityResult, cfg *contract.Config) error {
	for _, res := range results {
		title := fmt.Sprintf("Most gender-ambiguous names in %s (%s count > %d)", res.Years, res.Basis, res.MinCount)
		if err := writeSummaryTable(w, titleFor("⚖️ ", title, cfg), res.Names, cfg); err != nil {
			return err
		}
	}
	return nil
}

// writeSummaryTable generates and writes a human-readable table of name summaries.
func writeSummaryTable(w io.Writer, title string, names []schema.NameGenderSummary, cfg *contract.Config) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	if len(names) == 0 {
		_, err := fmt.Fprintf(w, "  (%v)\n\n", schema.ErrEmptyRange)
		return err
	}

	fmtFloat, intFmt := createFormatters(cfg.Precision)
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Name", "Female", "Male", "Total", "Entropy", "Label"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for i, s := range names {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(s.Name, nameWidth),
			fmt.Sprintf(intFmt, s.FemaleCount),
			fmt.Sprintf(intFmt, s.MaleCount),
			fmt.Sprintf(intFmt, s.Total()),
			fmtFloat(s.Entropy),
			labelFor(s.Entropy, cfg),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// writeFooter prints the elapsed time below text output.
func writeFooter(w io.Writer, duration time.Duration) error {
	if w != os.Stdout {
		return nil
	}
	_, err := fmt.Fprintf(w, "Computed in %v\n", duration.Round(time.Millisecond))
	return err
}
