package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intconfig "querycodec/internal/config"
	"querycodec/internal/domain"
	"querycodec/internal/domain/models"
	"querycodec/internal/query"
)

// VehicleListSpec renders vehicle listings. Keys are the JSON field names of
// models.Vehicle.
var VehicleListSpec = ListSpec{
	Table:  "vehicles",
	Select: "id, vehicle_code, plate_number, COALESCE(color,'') AS color, kilometers, DATE_FORMAT(last_service, '%Y-%m-%d') AS last_service",
	Columns: Columns{
		"id":          "id",
		"vehicleCode": "vehicle_code",
		"plateNumber": "plate_number",
		"color":       "color",
		"kilometers":  "kilometers",
		"lastService": "last_service",
	},
	DateKeys:     []string{"lastService"},
	DefaultOrder: "id DESC",
	DefaultLimit: 50,
	MaxLimit:     200,
}

type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns one page of vehicles matching q together with the effective
// pagination and the total count.
func (r VehicleRepository) List(ctx context.Context, q query.Query) ([]models.Vehicle, domain.Pagination, error) {
	countQ, err := VehicleListSpec.CountQuery(q)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	selectQ, page, err := VehicleListSpec.SelectQuery(q)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	db := r.db()
	if db == nil {
		return nil, domain.Pagination{}, domain.InternalError{Msg: "database not connected"}
	}

	if err := db.QueryRowContext(ctx, countQ.SQL, countQ.Args...).Scan(&page.Total); err != nil {
		return nil, domain.Pagination{}, domain.InternalError{Msg: "count vehicles failed", Err: err}
	}

	rows, err := db.QueryContext(ctx, selectQ.SQL, selectQ.Args...)
	if err != nil {
		return nil, domain.Pagination{}, domain.InternalError{Msg: "list vehicles failed", Err: err}
	}
	defer rows.Close()

	list := []models.Vehicle{}
	for rows.Next() {
		var (
			v    models.Vehicle
			km   sql.NullInt64
			last sql.NullString
		)
		if err := rows.Scan(&v.ID, &v.VehicleCode, &v.PlateNumber, &v.Color, &km, &last); err != nil {
			return nil, domain.Pagination{}, domain.InternalError{Msg: "scan vehicle failed", Err: err}
		}
		if km.Valid {
			x := int(km.Int64)
			v.Kilometers = &x
		}
		if last.Valid {
			v.LastService = last.String
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Pagination{}, domain.InternalError{Msg: fmt.Sprintf("iterate vehicles: %v", err), Err: err}
	}

	return list, page, nil
}
