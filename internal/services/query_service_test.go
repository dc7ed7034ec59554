package services

import (
	"errors"
	"net/url"
	"testing"

	"querycodec/internal/domain"
	"querycodec/internal/query"
)

func TestQueryServiceParse(t *testing.T) {
	svc := QueryService{Decode: query.DecodeOptions{DefaultPage: 1, DefaultLimit: 25}}

	values, _ := url.ParseQuery("_sort=-kilometers&color=white&kilometers=%3E%3D100&kilometers=%3C900")
	q, err := svc.Parse(values)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if q.Page != 1 || q.Limit != 25 {
		t.Fatalf("defaults not applied: %+v", q)
	}
	if len(q.SortBy) != 1 || q.SortBy[0].Order != query.Desc {
		t.Fatalf("unexpected sort %+v", q.SortBy)
	}
	if len(q.FilterBy) != 3 {
		t.Fatalf("expected 3 filters, got %+v", q.FilterBy)
	}
	if q.FilterBy[1].Operator != query.GreaterThanOrEqual || q.FilterBy[2].Operator != query.LessThan {
		t.Fatalf("unexpected kilometer filters %+v", q.FilterBy[1:])
	}
}

func TestQueryServiceParseRejectsOperator(t *testing.T) {
	svc := QueryService{}
	values := url.Values{"color": {"%%white"}}

	_, err := svc.Parse(values)
	var vErr domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != "color" {
		t.Fatalf("expected field color, got %q", vErr.Field)
	}
	if !errors.Is(err, query.ErrUnrecognizedOperator) {
		t.Fatalf("cause should be ErrUnrecognizedOperator")
	}
}

func TestQueryServiceFormat(t *testing.T) {
	svc := QueryService{Builder: query.NewBuilder(&query.Options{PageParamKey: "page"})}
	params, raw := svc.Format(query.Query{
		Page:     2,
		FilterBy: []query.FilterClause{{Key: "color", Operator: query.Equal, Value: query.String("red")}},
	})
	if params["page"].String() != "2" {
		t.Fatalf("unexpected params %v", params)
	}
	if raw != "color=%3D%3Dred&page=2" {
		t.Fatalf("unexpected raw query %q", raw)
	}
}
