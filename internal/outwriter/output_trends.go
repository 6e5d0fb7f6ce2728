package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/internal/parquet"
	"github.com/huangsam/babynames/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintTrendResults outputs percentage change rankings, dispatching based on the output format configured.
func PrintTrendResults(results []schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	done, err := writeFormatted(cfg, results, func() []parquet.ResultRow { return parquet.ConvertTrends(results) })
	if done {
		return err
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if err := writeTrendTables(w, results, cfg); err != nil {
			return err
		}
		return writeFooter(w, duration)
	}, "Wrote table")
}

// writeTrendTables writes one table per policy and direction.
func writeTrendTables(w io.Writer, results []schema.TrendResult, cfg *contract.Config) error {
	for _, res := range results {
		direction := string(res.Direction)
		if cfg.UseColors {
			direction = contract.GetColorDirection(res.Direction)
		}
		title := fmt.Sprintf("Largest %s %s from %d to %d", res.Policy, direction, res.BaseYear, res.CompareYear)
		if err := writeChangeTable(w, titleFor("📈", title, cfg), res, cfg); err != nil {
			return err
		}
	}
	return nil
}

// writeChangeTable generates and writes a human-readable table of percentage changes.
func writeChangeTable(w io.Writer, title string, res schema.TrendResult, cfg *contract.Config) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	if len(res.Names) == 0 {
		_, err := fmt.Fprintln(w, "  (no names changed)")
		return err
	}

	fmtFloat, intFmt := createFormatters(cfg.Precision)
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Name", strconv.Itoa(res.BaseYear), strconv.Itoa(res.CompareYear), "Change %"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for i, c := range res.Names {
		percent := fmtFloat(c.Percent)
		if cfg.UseColors {
			if res.Direction == schema.Decrease {
				percent = contract.DecreaseColor.Sprint(percent)
			} else {
				percent = contract.IncreaseColor.Sprint(percent)
			}
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(c.Name, nameWidth),
			fmt.Sprintf(intFmt, c.BaseCount),
			fmt.Sprintf(intFmt, c.CompareCount),
			percent,
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
