package selection

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/hydroshield/specbuilder-backend/internal/catalog"
	"github.com/lib/pq"
)

// PostgresStore reads product systems via database/sql. Queries are built
// dynamically from the filter set; column names only ever come from the
// catalog, never from caller input.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const systemColumns = `id, name, distributor, area_type, roof_subtype, foundation_subtype, civil_work_subtype, substrate, material, insulated, exposure, attachment`

func (s *PostgresStore) DistinctValues(ctx context.Context, attr string, filters Filters) ([]any, error) {
	if _, ok := catalog.ByName(attr); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAttribute, attr)
	}

	where, args, err := buildWhere(filters, exactClause)
	if err != nil {
		return nil, err
	}
	where = append(where, attr+" is not null")

	q := fmt.Sprintf(
		"select distinct %s from product_systems where %s order by %s",
		attr, strings.Join(where, " and "), attr,
	)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query distinct %s: %w", attr, err)
	}
	defer rows.Close()

	out := make([]any, 0, 8)
	for rows.Next() {
		var v any
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Match(ctx context.Context, filters Filters, limit int) ([]SystemRecord, error) {
	return s.query(ctx, filters, limit, matchClause)
}

func (s *PostgresStore) MatchExact(ctx context.Context, filters Filters, limit int) ([]SystemRecord, error) {
	return s.query(ctx, filters, limit, exactClause)
}

type clauseFunc func(attr catalog.Attribute, value any, argn int) (string, any)

func (s *PostgresStore) query(ctx context.Context, filters Filters, limit int, clause clauseFunc) ([]SystemRecord, error) {
	where, args, err := buildWhere(filters, clause)
	if err != nil {
		return nil, err
	}
	if len(where) == 0 {
		where = append(where, "true")
	}

	q := fmt.Sprintf(
		"select %s from product_systems where %s order by id limit %d",
		systemColumns, strings.Join(where, " and "), limit,
	)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query systems: %w", err)
	}
	defer rows.Close()

	out := make([]SystemRecord, 0, 8)
	for rows.Next() {
		var rec SystemRecord
		if err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Distributor, &rec.AreaType,
			&rec.RoofSubtype, &rec.FoundationSubtype, &rec.CivilWorkSubtype,
			&rec.Substrate, &rec.Material, &rec.Insulated, &rec.Exposure, &rec.Attachment,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func buildWhere(filters Filters, clause clauseFunc) ([]string, []any, error) {
	where := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))

	// Walk in catalog order so the generated SQL is deterministic.
	for _, attr := range catalog.Attributes() {
		value, ok := filters[attr.Name]
		if !ok {
			continue
		}
		c, arg := clause(attr, value, len(args)+1)
		where = append(where, c)
		args = append(args, arg)
	}

	for name := range filters {
		if _, ok := catalog.ByName(name); !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
		}
	}

	return where, args, nil
}

func exactClause(attr catalog.Attribute, value any, argn int) (string, any) {
	return fmt.Sprintf("%s = $%d", attr.Name, argn), value
}

func matchClause(attr catalog.Attribute, value any, argn int) (string, any) {
	if arr, ok := value.([]string); ok {
		return fmt.Sprintf("%s = any($%d)", attr.Name, argn), pq.Array(arr)
	}
	if attr.Kind == catalog.KindText {
		if s, ok := value.(string); ok {
			return fmt.Sprintf("%s ilike '%%' || $%d || '%%'", attr.Name, argn), s
		}
	}
	return fmt.Sprintf("%s = $%d", attr.Name, argn), value
}
