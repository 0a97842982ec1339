package storage

import "fmt"

// migrate creates the network schema if it doesn't exist.
func (db *DB) migrate() error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	db.logger.Info("database migrations applied")
	return nil
}

var migrations = []string{
	// Stops
	`CREATE TABLE IF NOT EXISTS stops (
		stop_id   TEXT PRIMARY KEY,
		name_en   TEXT NOT NULL,
		name_mm   TEXT,
		township  TEXT,
		lat       REAL NOT NULL,
		lon       REAL NOT NULL
	)`,

	// Routes
	`CREATE TABLE IF NOT EXISTS routes (
		route_id  TEXT PRIMARY KEY,
		name      TEXT NOT NULL,
		color     TEXT,
		operator  TEXT
	)`,

	// Ordered stop sequence per route. Stops are referenced by English
	// name, matching how route definitions are published.
	`CREATE TABLE IF NOT EXISTS route_stops (
		route_id  TEXT NOT NULL REFERENCES routes(route_id) ON DELETE CASCADE,
		position  INTEGER NOT NULL,
		stop_name TEXT NOT NULL,
		PRIMARY KEY (route_id, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_route_stops_name ON route_stops(stop_name)`,

	// Dataset metadata (version, import timestamp)
	`CREATE TABLE IF NOT EXISTS network_metadata (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}
