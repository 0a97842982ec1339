package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ybbus/internal/storage"
)

// Importer loads a parsed network into SQLite.
type Importer struct {
	db     *storage.DB
	logger *slog.Logger
}

// NewImporter creates an Importer.
func NewImporter(db *storage.DB, logger *slog.Logger) *Importer {
	return &Importer{db: db, logger: logger}
}

// Import replaces the stored network with the given one. The entire
// operation runs in a single transaction for atomicity.
func (imp *Importer) Import(ctx context.Context, net *Network) error {
	start := time.Now()

	tx, err := imp.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Clear existing data
	for _, table := range []string{"route_stops", "routes", "stops"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	stopStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO stops (stop_id, name_en, name_mm, township, lat, lon)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare stops insert: %w", err)
	}
	defer stopStmt.Close()
	for _, s := range net.Stops {
		if _, err := stopStmt.ExecContext(ctx, s.ID, s.NameEN, s.NameMM, s.Township, s.Lat, s.Lon); err != nil {
			return fmt.Errorf("insert stop %s: %w", s.ID, err)
		}
	}

	routeStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO routes (route_id, name, color, operator)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare routes insert: %w", err)
	}
	defer routeStmt.Close()

	seqStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO route_stops (route_id, position, stop_name)
		VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare route stops insert: %w", err)
	}
	defer seqStmt.Close()

	for _, r := range net.Routes {
		name := r.Name
		if name == "" {
			name = r.ID
		}
		if _, err := routeStmt.ExecContext(ctx, r.ID, name, r.Color, r.Operator); err != nil {
			return fmt.Errorf("insert route %s: %w", r.ID, err)
		}
		for pos, stopName := range r.Stops {
			if _, err := seqStmt.ExecContext(ctx, r.ID, pos, stopName); err != nil {
				return fmt.Errorf("insert route %s stop %d: %w", r.ID, pos, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO network_metadata (key, value) VALUES
		('version', ?), ('imported_at', ?)`,
		net.Version, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("set metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}

	imp.logger.Info("network imported",
		"stops", len(net.Stops),
		"routes", len(net.Routes),
		"version", net.Version,
		"took", time.Since(start),
	)
	return nil
}
