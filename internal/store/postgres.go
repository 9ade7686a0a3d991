package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres is a Store backed by a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect opens a pool and verifies it with a ping.
func Connect(ctx context.Context, url string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Migrate applies the embedded schema migrations.
func (p *Postgres) Migrate(ctx context.Context) error {
	return Migrate(ctx, p.pool)
}

func (p *Postgres) SaveAssessment(ctx context.Context, a *Assessment) error {
	record, err := json.Marshal(a.Record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	result, err := json.Marshal(a.Result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO assessments (id, patient_id, record, result, score, label, model_version, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.PatientID, record, result, a.Result.Score, string(a.Result.Label), a.Result.ModelVersion, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

const assessmentColumns = `id, patient_id, record, result, created_at`

func (p *Postgres) GetAssessment(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT `+assessmentColumns+` FROM assessments WHERE id = $1`, id)
	return scanAssessment(row)
}

func (p *Postgres) LatestAssessment(ctx context.Context, patientID string) (*Assessment, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT `+assessmentColumns+` FROM assessments
		 WHERE patient_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`, patientID)
	return scanAssessment(row)
}

func (p *Postgres) ListAssessments(ctx context.Context, patientID string, limit int) ([]Assessment, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+assessmentColumns+` FROM assessments
		 WHERE patient_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`, patientID, limit)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	var out []Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assessments: %w", err)
	}
	return out, nil
}

func (p *Postgres) SetConditions(ctx context.Context, patientID string, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	_, err := p.pool.Exec(ctx,
		`INSERT INTO patient_conditions (patient_id, tags, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (patient_id) DO UPDATE SET tags = EXCLUDED.tags, updated_at = NOW()`,
		patientID, tags,
	)
	if err != nil {
		return fmt.Errorf("upsert conditions: %w", err)
	}
	return nil
}

func (p *Postgres) Conditions(ctx context.Context, patientID string) ([]string, error) {
	var tags []string
	err := p.pool.QueryRow(ctx,
		`SELECT tags FROM patient_conditions WHERE patient_id = $1`, patientID,
	).Scan(&tags)
	if errors.Is(err, pgx.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query conditions: %w", err)
	}
	return tags, nil
}

func scanAssessment(row pgx.Row) (*Assessment, error) {
	var (
		a              Assessment
		record, result []byte
	)
	err := row.Scan(&a.ID, &a.PatientID, &record, &result, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan assessment: %w", err)
	}
	if err := json.Unmarshal(record, &a.Record); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	if err := json.Unmarshal(result, &a.Result); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return &a, nil
}
