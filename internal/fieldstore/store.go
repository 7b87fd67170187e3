package fieldstore

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// FieldSnapshot matches the field_snapshots table.
type FieldSnapshot struct {
	SnapshotID          string
	Frame               string
	TakenUnixNanos      int64
	DimX, DimY, DimZ    int
	Resolution          float64
	Connectivity        int
	ClearanceThreshold  float64
	HasGoal             bool
	GoalX, GoalY, GoalZ int
	WallCount           int
	CellBlob            []byte
	Reason              string
}

// Store provides snapshot persistence over a sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and runs pending
// migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the raw handle for admin tooling.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) migrateUp() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	// Don't close m: it would close the underlying DB connection.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// Insert persists a snapshot. If SnapshotID is empty a UUID is generated
// and written back.
func (s *Store) Insert(snap *FieldSnapshot) error {
	if snap.SnapshotID == "" {
		snap.SnapshotID = uuid.New().String()
	}
	var gx, gy, gz any
	hasGoal := 0
	if snap.HasGoal {
		hasGoal = 1
		gx, gy, gz = snap.GoalX, snap.GoalY, snap.GoalZ
	}
	_, err := s.db.Exec(`
		INSERT INTO field_snapshots (
			snapshot_id, frame, taken_unix_nanos,
			dim_x, dim_y, dim_z, resolution,
			connectivity, clearance_threshold,
			has_goal, goal_x, goal_y, goal_z,
			wall_count, cell_blob, reason
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snap.SnapshotID, snap.Frame, snap.TakenUnixNanos,
		snap.DimX, snap.DimY, snap.DimZ, snap.Resolution,
		snap.Connectivity, snap.ClearanceThreshold,
		hasGoal, gx, gy, gz,
		snap.WallCount, snap.CellBlob, snap.Reason,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// Latest returns the most recent snapshot for a frame, or nil if none
// exists.
func (s *Store) Latest(frame string) (*FieldSnapshot, error) {
	row := s.db.QueryRow(`
		SELECT `+snapshotColumns+`
		FROM field_snapshots
		WHERE frame = ?
		ORDER BY taken_unix_nanos DESC
		LIMIT 1`, frame)
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return snap, err
}

// List returns up to limit snapshots for a frame, newest first.
func (s *Store) List(frame string, limit int) ([]*FieldSnapshot, error) {
	rows, err := s.db.Query(`
		SELECT `+snapshotColumns+`
		FROM field_snapshots
		WHERE frame = ?
		ORDER BY taken_unix_nanos DESC
		LIMIT ?`, frame, limit)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var out []*FieldSnapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

const snapshotColumns = `snapshot_id, frame, taken_unix_nanos,
	dim_x, dim_y, dim_z, resolution,
	connectivity, clearance_threshold,
	has_goal, goal_x, goal_y, goal_z,
	wall_count, cell_blob, reason`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(r rowScanner) (*FieldSnapshot, error) {
	var snap FieldSnapshot
	var hasGoal int
	var gx, gy, gz sql.NullInt64
	var reason sql.NullString
	err := r.Scan(
		&snap.SnapshotID, &snap.Frame, &snap.TakenUnixNanos,
		&snap.DimX, &snap.DimY, &snap.DimZ, &snap.Resolution,
		&snap.Connectivity, &snap.ClearanceThreshold,
		&hasGoal, &gx, &gy, &gz,
		&snap.WallCount, &snap.CellBlob, &reason,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan snapshot: %w", err)
	}
	snap.HasGoal = hasGoal != 0
	if snap.HasGoal {
		snap.GoalX, snap.GoalY, snap.GoalZ = int(gx.Int64), int(gy.Int64), int(gz.Int64)
	}
	snap.Reason = reason.String
	return &snap, nil
}
