// filepath: internal/repository/postgres/postgres.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"moviedb/internal/config"
	"moviedb/internal/logging"
	"moviedb/internal/models"
	"moviedb/internal/repository"
)

// Repository is the PostgreSQL-backed movie catalog store. The pool is
// created once at startup and lives for the process lifetime; each call
// acquires one connection and releases it on every exit path.
type Repository struct {
	pool *pgxpool.Pool
}

var _ repository.Repository = (*Repository)(nil)

// New connects to PostgreSQL and verifies the connection.
func New(ctx context.Context, cfg *config.Config) (*Repository, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid database url: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{pool: pool}, nil
}

func (r *Repository) CountMovies(ctx context.Context, f repository.MovieFilter) (int, error) {
	sqlText, args, err := buildCountQuery(f)
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	logging.Log.Debugf("Generated SQL for CountMovies: %s", sqlText)
	logging.Log.Debugf("Arguments: %v", args)

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	var total int
	if err := conn.QueryRow(ctx, sqlText, args...).Scan(&total); err != nil {
		logging.Log.Errorf("Error executing CountMovies query: %v", err)
		return 0, err
	}
	return total, nil
}

func (r *Repository) ListMovies(ctx context.Context, f repository.MovieFilter, sort repository.MovieSort, limit, offset int) ([]models.Movie, error) {
	sqlText, args, err := buildListQuery(f, sort, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	logging.Log.Debugf("Generated SQL for ListMovies: %s", sqlText)
	logging.Log.Debugf("Arguments: %v", args)

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, sqlText, args...)
	if err != nil {
		logging.Log.Errorf("Error executing ListMovies query: %v", err)
		return nil, err
	}
	defer rows.Close()

	movies := make([]models.Movie, 0)
	for rows.Next() {
		var m models.Movie
		if err := scanMovie(rows, &m); err != nil {
			logging.Log.Errorf("Error scanning movie row: %v", err)
			return nil, err
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		logging.Log.Errorf("Error during rows iteration: %v", err)
		return nil, err
	}

	return movies, nil
}

func (r *Repository) GetMovieByID(ctx context.Context, id string) (*models.Movie, error) {
	sqlText, args, err := buildLookupQuery(id)
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup query: %w", err)
	}

	logging.Log.Debugf("Generated SQL for GetMovieByID: %s", sqlText)
	logging.Log.Debugf("Arguments: %v", args)

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	var m models.Movie
	if err := scanMovie(conn.QueryRow(ctx, sqlText, args...), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logging.Log.Errorf("Error executing GetMovieByID query: %v", err)
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *Repository) Close() {
	r.pool.Close()
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner, m *models.Movie) error {
	return row.Scan(
		&m.OriginalID,
		&m.Filename,
		&m.SizeBytes,
		&m.Quality,
		&m.LastUpdated,
		&m.IsSeries,
		&m.DownloadLink,
		&m.StreamLink,
		&m.Language,
	)
}
