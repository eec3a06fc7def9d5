package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"complyapi/internal/model"
	"complyapi/internal/repository"
)

var checkCols = []string{"id", "source_name", "content_type", "storage_path", "guidelines", "overall_percentage", "overall_status", "report", "created_at"}

func sampleCheck(now time.Time) *model.ComplianceCheck {
	return &model.ComplianceCheck{
		ID:                "test-uuid",
		SourceName:        "creative.pdf",
		ContentType:       "application/pdf",
		StoragePath:       "submissions/test-uuid.pdf",
		Guidelines:        []string{"amfi", "asci"},
		OverallPercentage: 91.5,
		OverallStatus:     model.StatusWarning,
		Report:            json.RawMessage(`{"overall_status":"Warning"}`),
		CreatedAt:         now,
	}
}

func checkRow(c *model.ComplianceCheck) *sqlmock.Rows {
	return sqlmock.NewRows(checkCols).AddRow(
		c.ID, c.SourceName, c.ContentType, c.StoragePath, "amfi,asci",
		c.OverallPercentage, string(c.OverallStatus), []byte(c.Report), c.CreatedAt)
}

func TestCheckPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewCheckPostgres(db)
	ctx := context.Background()
	c := sampleCheck(time.Now().UTC())

	mock.ExpectQuery("INSERT INTO compliance_checks").
		WithArgs(c.ID, c.SourceName, c.ContentType, c.StoragePath, "amfi,asci",
			c.OverallPercentage, "Warning", []byte(c.Report), c.CreatedAt).
		WillReturnRows(checkRow(c))

	result, err := repo.Create(ctx, c)

	assert.NoError(t, err)
	assert.Equal(t, c.ID, result.ID)
	assert.Equal(t, []string{"amfi", "asci"}, result.Guidelines)
	assert.Equal(t, model.StatusWarning, result.OverallStatus)
	assert.JSONEq(t, string(c.Report), string(result.Report))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckPostgres_Create_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewCheckPostgres(db)
	mock.ExpectQuery("INSERT INTO compliance_checks").WillReturnError(errors.New("db down"))

	result, err := repo.Create(context.Background(), sampleCheck(time.Now()))

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewCheckPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		c := sampleCheck(time.Now().UTC())
		mock.ExpectQuery("SELECT (.+) FROM compliance_checks WHERE id = \\$1").
			WithArgs(c.ID).
			WillReturnRows(checkRow(c))

		result, err := repo.FindByID(ctx, c.ID)

		assert.NoError(t, err)
		assert.Equal(t, c.SourceName, result.SourceName)
		assert.Equal(t, c.StoragePath, result.StoragePath)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM compliance_checks WHERE id = \\$1").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		result, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCheckPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewCheckPostgres(db)
	ctx := context.Background()
	pq := repository.PageQuery{Limit: 10, Offset: 0}

	t.Run("success", func(t *testing.T) {
		c := sampleCheck(time.Now().UTC())
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM compliance_checks").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM compliance_checks ORDER BY created_at DESC, id DESC LIMIT \\$1 OFFSET \\$2").
			WithArgs(pq.Limit, pq.Offset).
			WillReturnRows(checkRow(c))

		result, err := repo.List(ctx, pq)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Total)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, c.ID, result.Items[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty guidelines", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM compliance_checks").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM compliance_checks").
			WithArgs(pq.Limit, pq.Offset).
			WillReturnRows(sqlmock.NewRows(checkCols).
				AddRow("id", "x.txt", "text/plain", "", "", 100.0, "Pass", []byte("{}"), time.Now()))

		result, err := repo.List(ctx, pq)

		assert.NoError(t, err)
		assert.Equal(t, []string{}, result.Items[0].Guidelines)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM compliance_checks").
			WillReturnError(sql.ErrConnDone)

		result, err := repo.List(ctx, pq)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCheckPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewCheckPostgres(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM compliance_checks WHERE id = \\$1").
			WithArgs("test-uuid").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "test-uuid"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM compliance_checks WHERE id = \\$1").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "missing"), repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
