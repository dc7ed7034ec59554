package repositories

import (
	"fmt"
	"math"
	"strings"

	"querycodec/internal/domain"
	"querycodec/internal/query"
	"querycodec/internal/utils"
)

// Columns maps public filter/sort keys to SQL columns. Keys missing from the
// map are rejected, so column names never come from the request.
type Columns map[string]string

// ListSpec describes how a decoded query.Query is rendered against one table.
type ListSpec struct {
	Table        string
	Select       string
	Columns      Columns
	// DateKeys lists keys compared as YYYY-MM-DD dates.
	DateKeys     []string
	DefaultOrder string
	DefaultLimit int
	MaxLimit     int
}

// SQLQuery is a rendered statement with positional arguments.
type SQLQuery struct {
	SQL  string `json:"sql"`
	Args []any  `json:"args"`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s ListSpec) isDate(key string) bool {
	for _, k := range s.DateKeys {
		if k == key {
			return true
		}
	}
	return false
}

// arg converts a comparison operand into its SQL argument.
func (s ListSpec) arg(f query.FilterClause) (any, error) {
	if !s.isDate(f.Key) {
		return f.Value.Any(), nil
	}
	d, err := utils.ParseDate(f.Value.String())
	if err != nil {
		return nil, domain.ValidationError{Field: f.Key, Msg: "expected date YYYY-MM-DD", Err: err}
	}
	return utils.FormatDate(d), nil
}

func (s ListSpec) column(key string) (string, error) {
	col, ok := s.Columns[key]
	if !ok {
		return "", domain.ValidationError{Field: key, Msg: "unknown field"}
	}
	return col, nil
}

// Where renders filter clauses as an AND-ed condition without the WHERE
// keyword. An empty slice renders "".
func (s ListSpec) Where(filters []query.FilterClause) (string, []any, error) {
	parts := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))

	for _, f := range filters {
		col, err := s.column(f.Key)
		if err != nil {
			return "", nil, err
		}
		if f.Value.IsUndefined() {
			return "", nil, domain.ValidationError{Field: f.Key, Msg: "missing filter value"}
		}

		op, err := query.FilterOperatorToSQLOperator(f.Operator, f.Value)
		if err != nil {
			return "", nil, domain.ValidationError{Field: f.Key, Err: err}
		}

		switch {
		case f.Value.IsNull():
			if op != "IS" && op != "IS NOT" {
				return "", nil, domain.ValidationError{Field: f.Key, Msg: fmt.Sprintf("null cannot be compared with %s", f.Operator)}
			}
			parts = append(parts, col+" "+op+" NULL")
		case f.Operator == query.Contains:
			parts = append(parts, col+" LIKE ?")
			args = append(args, "%"+likeEscaper.Replace(f.Value.String())+"%")
		default:
			a, err := s.arg(f)
			if err != nil {
				return "", nil, err
			}
			parts = append(parts, col+" "+op+" ?")
			args = append(args, a)
		}
	}

	return strings.Join(parts, " AND "), args, nil
}

// OrderBy renders sort clauses, falling back to the default order.
func (s ListSpec) OrderBy(sorts []query.SortClause) (string, error) {
	if len(sorts) == 0 {
		return s.DefaultOrder, nil
	}
	parts := make([]string, 0, len(sorts))
	for _, sc := range sorts {
		col, err := s.column(sc.Key)
		if err != nil {
			return "", err
		}
		dir := "ASC"
		if sc.Order == query.Desc {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
	}
	return strings.Join(parts, ", "), nil
}

// Paginate clamps page and limit: page < 1 becomes 1, a missing limit takes
// the default and a large one is capped. A page whose offset does not fit in
// an int is rejected.
func (s ListSpec) Paginate(q query.Query) (domain.Pagination, error) {
	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.DefaultLimit
	}
	if s.MaxLimit > 0 && limit > s.MaxLimit {
		limit = s.MaxLimit
	}
	if limit > 0 && page-1 > math.MaxInt/limit {
		return domain.Pagination{}, domain.ValidationError{Field: "page", Msg: "page out of range"}
	}
	return domain.Pagination{Page: page, Limit: limit}, nil
}

// SelectQuery renders the page of rows matching q.
func (s ListSpec) SelectQuery(q query.Query) (SQLQuery, domain.Pagination, error) {
	where, args, err := s.Where(q.FilterBy)
	if err != nil {
		return SQLQuery{}, domain.Pagination{}, err
	}
	order, err := s.OrderBy(q.SortBy)
	if err != nil {
		return SQLQuery{}, domain.Pagination{}, err
	}
	p, err := s.Paginate(q)
	if err != nil {
		return SQLQuery{}, domain.Pagination{}, err
	}

	var b strings.Builder
	b.WriteString("SELECT " + s.Select + " FROM " + s.Table)
	if where != "" {
		b.WriteString(" WHERE " + where)
	}
	if order != "" {
		b.WriteString(" ORDER BY " + order)
	}
	b.WriteString(" LIMIT ? OFFSET ?")
	args = append(args, p.Limit, p.Offset())

	return SQLQuery{SQL: b.String(), Args: args}, p, nil
}

// CountQuery renders the total number of rows matching the filters of q.
func (s ListSpec) CountQuery(q query.Query) (SQLQuery, error) {
	where, args, err := s.Where(q.FilterBy)
	if err != nil {
		return SQLQuery{}, err
	}
	sqlText := "SELECT COUNT(*) FROM " + s.Table
	if where != "" {
		sqlText += " WHERE " + where
	}
	return SQLQuery{SQL: sqlText, Args: args}, nil
}
