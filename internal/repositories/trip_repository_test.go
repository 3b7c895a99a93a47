package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return db, mock
}

func TestTripRepositoryFindById(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "destination", "days", "mood"}).
		AddRow(id, "Puri", 3, "relaxing")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "trips"`)).
		WithArgs(id.String(), 1).
		WillReturnRows(rows)

	trip, err := repo.FindById(context.Background(), id.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip == nil {
		t.Fatal("expected a trip")
	}
	if trip.Destination != "Puri" || trip.Days != 3 {
		t.Fatalf("unexpected trip %+v", trip)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripRepositoryFindByIdNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	id := uuid.New().String()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "trips"`)).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	trip, err := repo.FindById(context.Background(), id)
	if err != nil {
		t.Fatalf("missing rows should not error: %v", err)
	}
	if trip != nil {
		t.Fatalf("expected nil trip, got %+v", trip)
	}
}

func TestTripRepositoryCountAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "trips"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 7 {
		t.Fatalf("expected 7, got %d", count)
	}
}

func TestTripRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	id := uuid.New().String()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "trips" SET "deleted_at"=`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
