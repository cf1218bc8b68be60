package systems

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hydroshield/specbuilder-backend/internal/selection"
)

// ErrNotFound is returned when no system exists for the requested id.
var ErrNotFound = errors.New("system not found")

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Detail is a system record together with its layer rows.
type Detail struct {
	selection.SystemRecord
	Layers []LayerAssignment `json:"layers"`
}

func (r *Repo) Get(ctx context.Context, id string) (*Detail, error) {
	const q = `
select id, name, distributor, area_type, roof_subtype, foundation_subtype,
       civil_work_subtype, substrate, material, insulated, exposure, attachment
from product_systems
where id = $1;
`
	var d Detail
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.Name, &d.Distributor, &d.AreaType,
		&d.RoofSubtype, &d.FoundationSubtype, &d.CivilWorkSubtype,
		&d.Substrate, &d.Material, &d.Insulated, &d.Exposure, &d.Attachment,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get system: %w", err)
	}

	layers, err := r.Layers(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Layers = layers
	return &d, nil
}

// Layers returns every layer assignment of a system, ordered by combination
// then layer tag.
func (r *Repo) Layers(ctx context.Context, systemID string) ([]LayerAssignment, error) {
	const q = `
select sl.system_id, sl.combination, p.id, p.name, p.layer, p.distributor
from system_layers sl
join products p on p.id = sl.product_id
where sl.system_id = $1
order by sl.combination, p.layer;
`
	rows, err := r.db.QueryContext(ctx, q, systemID)
	if err != nil {
		return nil, fmt.Errorf("query layers: %w", err)
	}
	defer rows.Close()

	out := make([]LayerAssignment, 0, 8)
	for rows.Next() {
		var l LayerAssignment
		if err := rows.Scan(
			&l.SystemID, &l.Combination,
			&l.Product.ID, &l.Product.Name, &l.Product.Layer, &l.Product.Distributor,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
