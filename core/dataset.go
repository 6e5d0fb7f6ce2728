package core

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/internal/datastore"
	"github.com/huangsam/babynames/internal/outwriter"
	"github.com/huangsam/babynames/internal/parquet"
	"github.com/huangsam/babynames/schema"
)

// errNoStore is returned by dataset commands that need --target-backend.
var errNoStore = errors.New("no dataset store configured. Set --target-backend to sqlite, mysql or postgresql")

// GetDatasetStatus loads the source and summarizes its contents.
func GetDatasetStatus(ctx context.Context, cfg *contract.Config, src contract.RecordSource) (schema.DatasetStatus, error) {
	records, stats, err := loadRecords(WithSuppressHeader(ctx), cfg, src)
	if err != nil {
		return schema.DatasetStatus{}, err
	}
	return summarizeDataset(records, stats), nil
}

// summarizeDataset counts names, states and births per sex.
func summarizeDataset(records []schema.Record, stats schema.LoadStats) schema.DatasetStatus {
	status := schema.DatasetStatus{LoadStats: stats}
	names := make(map[string]struct{})
	states := make(map[string]struct{})
	for _, r := range records {
		names[r.Name] = struct{}{}
		states[r.State] = struct{}{}
		switch r.Sex {
		case schema.Female:
			status.FemaleTotal += r.Count
		case schema.Male:
			status.MaleTotal += r.Count
		default:
			status.OtherTotal += r.Count
		}
	}
	status.DistinctNames = len(names)
	status.States = len(states)
	status.Years, _ = schema.YearSpan(records)
	return status
}

// ExecuteDatasetStatus prints source statistics, followed by the store status when one is configured.
func ExecuteDatasetStatus(ctx context.Context, w io.Writer, cfg *contract.Config, src contract.RecordSource, store contract.DatasetStore) error {
	status, err := GetDatasetStatus(ctx, cfg, src)
	if err != nil {
		return err
	}
	if err := outwriter.NewOutWriter().WriteDatasetStatus(status, cfg); err != nil {
		return err
	}
	if store == nil || cfg.Output != schema.TextOut {
		return nil
	}

	storeStatus, err := store.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get dataset store status: %w", err)
	}
	_, _ = fmt.Fprintln(w)
	datastore.PrintStoreStatus(w, storeStatus)
	return nil
}

// ExecuteDatasetConvert writes every source record to a Parquet file usable as a parquet source.
func ExecuteDatasetConvert(ctx context.Context, w io.Writer, cfg *contract.Config, src contract.RecordSource) error {
	if cfg.OutputFile == "" {
		return errors.New("dataset convert requires --output-file")
	}
	records, _, err := loadRecords(ctx, cfg, src)
	if err != nil {
		return err
	}
	if err := parquet.WriteRecordsParquet(records, cfg.OutputFile); err != nil {
		return fmt.Errorf("failed to convert dataset: %w", err)
	}
	_, err = fmt.Fprintf(w, "Wrote %d records to %s\n", len(records), cfg.OutputFile)
	return err
}

// ExecuteDatasetImport migrates the store to the latest schema and replaces its rows with the source records.
func ExecuteDatasetImport(ctx context.Context, w io.Writer, cfg *contract.Config, src contract.RecordSource, store contract.DatasetStore) error {
	if store == nil {
		return errNoStore
	}
	if err := store.Migrate(contract.DefaultMigrateToLatest); err != nil {
		return fmt.Errorf("failed to prepare %s schema: %w", cfg.TargetBackend, err)
	}
	records, _, err := loadRecords(ctx, cfg, src)
	if err != nil {
		return err
	}
	n, err := store.Import(ctx, records)
	if err != nil {
		return fmt.Errorf("failed to import dataset: %w", err)
	}
	_, err = fmt.Fprintf(w, "Imported %d records into %s\n", n, cfg.TargetBackend)
	return err
}

// ExecuteDatasetMigrate moves the store schema to cfg.TargetVersion.
func ExecuteDatasetMigrate(_ context.Context, cfg *contract.Config, store contract.DatasetStore) error {
	if store == nil {
		return errNoStore
	}
	return store.Migrate(cfg.TargetVersion)
}

// ExecuteDatasetClear removes the imported dataset.
func ExecuteDatasetClear(_ context.Context, w io.Writer, cfg *contract.Config, store contract.DatasetStore) error {
	if store == nil {
		return errNoStore
	}
	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to clear dataset: %w", err)
	}
	_, err := fmt.Fprintf(w, "Cleared %s dataset\n", cfg.TargetBackend)
	return err
}
