package postgres

import (
	"database/sql"
	"fmt"
	_ "github.com/lib/pq"
	"roomBooker/internal/config"
	"roomBooker/internal/models"
)

// Storage archives the in-memory state so a restart can pick it up again.
// It is a snapshot, not a journal: writes between snapshots can be lost.
type Storage struct {
	DB *sql.DB
}

func ConnString(dbCfg *config.Database) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	db, err := sql.Open("postgres", ConnString(dbCfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}
	if err = s.migrate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS resources (
			kind     TEXT    NOT NULL,
			id       BIGINT  NOT NULL,
			name     TEXT    NOT NULL,
			capacity INTEGER NOT NULL,
			PRIMARY KEY (kind, id)
		);
		CREATE TABLE IF NOT EXISTS bookings (
			id            BIGINT      PRIMARY KEY,
			username      TEXT        NOT NULL,
			resource_kind TEXT        NOT NULL,
			resource_id   BIGINT      NOT NULL,
			resource_name TEXT        NOT NULL,
			capacity      INTEGER     NOT NULL,
			start_time    TIMESTAMPTZ NOT NULL,
			end_time      TIMESTAMPTZ NOT NULL,
			CHECK (start_time < end_time)
		)`

	if _, err := s.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// SaveSnapshot replaces the archived state with the given resources and bookings.
func (s *Storage) SaveSnapshot(resources []models.Resource, bookings []models.Booking) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.Exec(`DELETE FROM bookings`); err != nil {
		return fmt.Errorf("failed to clear bookings: %w", err)
	}

	if _, err = tx.Exec(`DELETE FROM resources`); err != nil {
		return fmt.Errorf("failed to clear resources: %w", err)
	}

	resourceQuery := `
		INSERT INTO resources (kind, id, name, capacity)
		VALUES ($1, $2, $3, $4)`

	for _, r := range resources {
		if _, err = tx.Exec(resourceQuery, string(r.Kind), r.ID, r.Name, r.Capacity); err != nil {
			return fmt.Errorf("failed to save resource %s: %w", r.Key(), err)
		}
	}

	bookingQuery := `
		INSERT INTO bookings (id, username, resource_kind, resource_id, resource_name, capacity, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	for _, b := range bookings {
		_, err = tx.Exec(bookingQuery,
			b.ID,
			b.User,
			string(b.Resource.Kind),
			b.Resource.ID,
			b.Resource.Name,
			b.Resource.Capacity,
			b.Start,
			b.End,
		)
		if err != nil {
			return fmt.Errorf("failed to save booking %d: %w", b.ID, err)
		}
	}

	return tx.Commit()
}

func (s *Storage) LoadResources() ([]models.Resource, error) {
	query := `
		SELECT kind, id, name, capacity
		FROM resources
		ORDER BY kind, id`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get resources: %w", err)
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		var r models.Resource
		var kind string
		if err = rows.Scan(&kind, &r.ID, &r.Name, &r.Capacity); err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		r.Kind = models.Kind(kind)
		resources = append(resources, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resources: %w", err)
	}

	return resources, nil
}

func (s *Storage) LoadBookings() ([]models.Booking, error) {
	query := `
		SELECT id, username, resource_kind, resource_id, resource_name, capacity, start_time, end_time
		FROM bookings
		ORDER BY id`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		var kind string
		err = rows.Scan(
			&b.ID,
			&b.User,
			&kind,
			&b.Resource.ID,
			&b.Resource.Name,
			&b.Resource.Capacity,
			&b.Start,
			&b.End,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		b.Resource.Kind = models.Kind(kind)
		b.Start = b.Start.UTC()
		b.End = b.End.UTC()
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}
