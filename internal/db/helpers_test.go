package db

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestHasTable(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("vehicles").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("vehicles"))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	ctx := context.Background()
	if !HasTable(ctx, conn, "vehicles") {
		t.Fatalf("expected vehicles table")
	}
	if HasTable(ctx, conn, "missing") {
		t.Fatalf("missing table should report false")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCountRows(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM vehicles").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	n, err := CountRows(context.Background(), conn, "vehicles")
	if err != nil || n != 12 {
		t.Fatalf("got %d %v", n, err)
	}
}
