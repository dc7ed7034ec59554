package services

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"querycodec/internal/domain"
	"querycodec/internal/domain/models"
	"querycodec/internal/query"
	"querycodec/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

type fakeLister struct {
	got   query.Query
	items []models.Vehicle
	err   error
}

func (f *fakeLister) List(_ context.Context, q query.Query) ([]models.Vehicle, domain.Pagination, error) {
	f.got = q
	return f.items, domain.Pagination{Page: 1, Limit: 50, Total: int64(len(f.items))}, f.err
}

func TestVehicleServiceList(t *testing.T) {
	repo := &fakeLister{items: []models.Vehicle{{ID: 1, VehicleCode: "LK-01"}}}
	svc := VehicleService{Repo: repo}

	out, err := svc.List(context.Background(), "req-1", url.Values{"vehicleCode": {"@=LK"}})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(out.Items) != 1 || out.Total != 1 {
		t.Fatalf("unexpected list %+v", out)
	}
	if len(repo.got.FilterBy) != 1 || repo.got.FilterBy[0].Operator != query.Contains {
		t.Fatalf("repository got %+v", repo.got)
	}
}

func TestVehicleServiceListRejectsBeforeRepository(t *testing.T) {
	repo := &fakeLister{}
	svc := VehicleService{Repo: repo}

	_, err := svc.List(context.Background(), "", url.Values{"color": {"#red"}})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.got.FilterBy != nil {
		t.Fatalf("repository should not be called")
	}
}

func TestVehicleServiceWithSQLMock(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM vehicles WHERE color IS NULL").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("FROM vehicles WHERE color IS NULL ORDER BY plate_number DESC LIMIT \\? OFFSET \\?").
		WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_code", "plate_number", "color", "kilometers", "last_service"}))

	svc := VehicleService{
		Repo:    repositories.VehicleRepository{DB: db},
		Queries: QueryService{Decode: query.DecodeOptions{DefaultPage: 1}},
	}
	out, err := svc.List(context.Background(), "req-2", url.Values{"color": {"null"}, "_sort": {"-plateNumber"}})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(out.Items) != 0 || out.Page != 1 || out.Limit != 50 {
		t.Fatalf("unexpected result %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVehicleServicePreview(t *testing.T) {
	svc := VehicleService{}
	p, err := svc.Preview(url.Values{"kilometers": {">5000"}, "_limit": {"10"}})
	if err != nil {
		t.Fatalf("Preview returned error: %v", err)
	}
	if !strings.HasSuffix(p.Select.SQL, "WHERE kilometers > ? ORDER BY id DESC LIMIT ? OFFSET ?") {
		t.Fatalf("unexpected select %q", p.Select.SQL)
	}
	if p.Count.SQL != "SELECT COUNT(*) FROM vehicles WHERE kilometers > ?" {
		t.Fatalf("unexpected count %q", p.Count.SQL)
	}
	if p.Limit != 10 {
		t.Fatalf("unexpected limit %d", p.Limit)
	}
}
