package services

import (
	"context"
	"fmt"
	"net/url"

	"querycodec/internal/domain"
	"querycodec/internal/domain/models"
	"querycodec/internal/query"
	"querycodec/internal/repositories"
	"querycodec/internal/utils"
)

type VehicleLister interface {
	List(ctx context.Context, q query.Query) ([]models.Vehicle, domain.Pagination, error)
}

type VehicleList struct {
	Items []models.Vehicle `json:"items"`
	domain.Pagination
	Query query.Query `json:"query"`
}

// SQLPreview is the statement pair a listing would run.
type SQLPreview struct {
	Select repositories.SQLQuery `json:"select"`
	Count  repositories.SQLQuery `json:"count"`
	domain.Pagination
}

type VehicleService struct {
	Repo    VehicleLister
	Queries QueryService
}

// List decodes the request query and returns the matching page of vehicles.
func (s VehicleService) List(ctx context.Context, requestID string, values url.Values) (VehicleList, error) {
	q, err := s.Queries.Parse(values)
	if err != nil {
		utils.LogEvent(requestID, "vehicles", "list", "rejected query: "+err.Error())
		return VehicleList{}, err
	}

	items, page, err := s.Repo.List(ctx, q)
	if err != nil {
		utils.LogEvent(requestID, "vehicles", "list", "list failed: "+err.Error())
		return VehicleList{}, err
	}

	utils.LogEvent(requestID, "vehicles", "list", fmt.Sprintf("returned %d of %d vehicles", len(items), page.Total))
	return VehicleList{Items: items, Pagination: page, Query: q}, nil
}

// Preview renders the SQL a listing would run without touching the database.
func (s VehicleService) Preview(values url.Values) (SQLPreview, error) {
	q, err := s.Queries.Parse(values)
	if err != nil {
		return SQLPreview{}, err
	}
	sel, page, err := repositories.VehicleListSpec.SelectQuery(q)
	if err != nil {
		return SQLPreview{}, err
	}
	cnt, err := repositories.VehicleListSpec.CountQuery(q)
	if err != nil {
		return SQLPreview{}, err
	}
	return SQLPreview{Select: sel, Count: cnt, Pagination: page}, nil
}
