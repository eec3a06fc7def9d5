package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"complyapi/internal/model"
	"complyapi/internal/repository"
)

// CheckPostgres is a PostgreSQL implementation of repository.CheckRepository.
// It uses database/sql with parameterized queries.
type CheckPostgres struct {
	db *sql.DB
}

// NewCheckPostgres creates a new CheckPostgres repository.
func NewCheckPostgres(db *sql.DB) *CheckPostgres {
	return &CheckPostgres{db: db}
}

var _ repository.CheckRepository = (*CheckPostgres)(nil)

const checkColumns = `id, source_name, content_type, storage_path, guidelines, overall_percentage, overall_status, report, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCheck(s rowScanner) (*model.ComplianceCheck, error) {
	var (
		c          model.ComplianceCheck
		guidelines string
		status     string
		report     []byte
	)
	if err := s.Scan(
		&c.ID,
		&c.SourceName,
		&c.ContentType,
		&c.StoragePath,
		&guidelines,
		&c.OverallPercentage,
		&status,
		&report,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	c.Guidelines = splitGuidelines(guidelines)
	c.OverallStatus = model.Status(status)
	c.Report = report
	return &c, nil
}

func splitGuidelines(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

// Create inserts a new check row and returns the stored record.
func (r *CheckPostgres) Create(ctx context.Context, check *model.ComplianceCheck) (*model.ComplianceCheck, error) {
	const q = `
		INSERT INTO compliance_checks (` + checkColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + checkColumns

	report := check.Report
	if len(report) == 0 {
		report = []byte("{}")
	}
	row := r.db.QueryRowContext(ctx, q,
		check.ID,
		check.SourceName,
		check.ContentType,
		check.StoragePath,
		strings.Join(check.Guidelines, ","),
		check.OverallPercentage,
		string(check.OverallStatus),
		[]byte(report),
		check.CreatedAt,
	)
	out, err := scanCheck(row)
	if err != nil {
		return nil, fmt.Errorf("insert compliance check: %w", err)
	}
	return out, nil
}

// FindByID fetches a single check by its ID.
func (r *CheckPostgres) FindByID(ctx context.Context, id string) (*model.ComplianceCheck, error) {
	const q = `SELECT ` + checkColumns + ` FROM compliance_checks WHERE id = $1`
	out, err := scanCheck(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("find compliance check: %w", err)
	}
	return out, nil
}

// List returns checks using LIMIT/OFFSET pagination and a total count.
func (r *CheckPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.ComplianceCheck], error) {
	const qCount = `SELECT COUNT(*) FROM compliance_checks`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, fmt.Errorf("count compliance checks: %w", err)
	}

	const qList = `
		SELECT ` + checkColumns + `
		FROM compliance_checks
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, fmt.Errorf("list compliance checks: %w", err)
	}
	defer rows.Close()

	items := make([]model.ComplianceCheck, 0)
	for rows.Next() {
		c, err := scanCheck(rows)
		if err != nil {
			return nil, fmt.Errorf("scan compliance check: %w", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.ComplianceCheck]{
		Items: items,
		Total: total,
	}, nil
}

// Delete removes a check by ID.
func (r *CheckPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM compliance_checks WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete compliance check: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
