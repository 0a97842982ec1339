package storage

import (
	"context"
	"database/sql"
	"fmt"

	"ybbus/internal/transit"
)

// GetMetadata retrieves a value from the network_metadata table.
func (db *DB) GetMetadata(ctx context.Context, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM network_metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// SetMetadata stores a key-value pair in the network_metadata table.
func (db *DB) SetMetadata(ctx context.Context, key, value string) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR REPLACE INTO network_metadata (key, value) VALUES (?, ?)`,
		key, value)
	return err
}

// HasData reports whether a network has been imported.
func (db *DB) HasData(ctx context.Context) bool {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stops`).Scan(&n); err != nil {
		return false
	}
	return n > 0
}

// LoadSnapshot reads the full network into an immutable in-memory view.
// Returns ErrNoData when the store holds no stops.
func (db *DB) LoadSnapshot(ctx context.Context) (*transit.Snapshot, error) {
	stops, err := db.allStops(ctx)
	if err != nil {
		return nil, err
	}
	if len(stops) == 0 {
		return nil, ErrNoData
	}

	routes, err := db.allRoutes(ctx)
	if err != nil {
		return nil, err
	}

	snap := transit.NewSnapshot(stops, routes)
	db.logger.Info("network snapshot loaded", "stops", len(stops), "routes", len(routes))
	return snap, nil
}

func (db *DB) allStops(ctx context.Context) ([]transit.Stop, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT stop_id, name_en, name_mm, township, lat, lon
		FROM stops ORDER BY stop_id`)
	if err != nil {
		return nil, fmt.Errorf("query stops: %w", err)
	}
	defer rows.Close()

	var stops []transit.Stop
	for rows.Next() {
		var s transit.Stop
		var nameMM, township sql.NullString
		if err := rows.Scan(&s.ID, &s.NameEN, &nameMM, &township, &s.Lat, &s.Lon); err != nil {
			return nil, fmt.Errorf("scan stop: %w", err)
		}
		s.NameMM = nameMM.String
		s.Township = township.String
		stops = append(stops, s)
	}
	return stops, rows.Err()
}

func (db *DB) allRoutes(ctx context.Context) ([]*transit.Route, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT route_id, name, color, operator
		FROM routes ORDER BY route_id`)
	if err != nil {
		return nil, fmt.Errorf("query routes: %w", err)
	}
	defer rows.Close()

	byID := map[string]*transit.Route{}
	var routes []*transit.Route
	for rows.Next() {
		var r transit.Route
		var color, operator sql.NullString
		if err := rows.Scan(&r.ID, &r.Name, &color, &operator); err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		r.Color = color.String
		r.Operator = operator.String
		routes = append(routes, &r)
		byID[r.ID] = &r
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stopRows, err := db.QueryContext(ctx, `
		SELECT route_id, stop_name
		FROM route_stops ORDER BY route_id, position`)
	if err != nil {
		return nil, fmt.Errorf("query route stops: %w", err)
	}
	defer stopRows.Close()

	for stopRows.Next() {
		var routeID, stopName string
		if err := stopRows.Scan(&routeID, &stopName); err != nil {
			return nil, fmt.Errorf("scan route stop: %w", err)
		}
		if r, ok := byID[routeID]; ok {
			r.Stops = append(r.Stops, stopName)
		}
	}
	return routes, stopRows.Err()
}
