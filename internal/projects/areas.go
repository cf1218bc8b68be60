package projects

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Area is one sub-area of a project, bound to a resolved product system and
// one bill-of-materials combination.
type Area struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_public_id"`
	Name        string    `json:"name"`
	SystemID    string    `json:"system_id"`
	Combination int       `json:"combination"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *Repo) CreateArea(ctx context.Context, userDBID, projectPublicID, name, systemID string, combination int) (*Area, error) {
	if name == "" || systemID == "" {
		return nil, fmt.Errorf("name and system_id required")
	}
	if combination < 1 {
		return nil, fmt.Errorf("combination must be a positive integer")
	}

	const q = `
insert into project_areas (id, project_id, name, system_id, combination)
select $2::uuid, p.id, $3, $4, $5
from projects p
where p.user_id = $1::uuid and p.public_id = $6 and p.deleted_at is null
returning id::text, $6, name, system_id, combination, created_at, updated_at;
`
	var a Area
	err := r.db.QueryRow(ctx, q, userDBID, uuid.New().String(), name, systemID, combination, projectPublicID).
		Scan(&a.ID, &a.ProjectID, &a.Name, &a.SystemID, &a.Combination, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repo) ListAreas(ctx context.Context, userDBID, projectPublicID string) ([]Area, error) {
	const q = `
select a.id::text, p.public_id, a.name, a.system_id, a.combination, a.created_at, a.updated_at
from project_areas a
join projects p on p.id = a.project_id
where p.user_id = $1::uuid and p.public_id = $2 and p.deleted_at is null
order by a.created_at;
`
	rows, err := r.db.Query(ctx, q, userDBID, projectPublicID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Area, 0, 8)
	for rows.Next() {
		var a Area
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.Name, &a.SystemID, &a.Combination, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateArea(ctx context.Context, userDBID, projectPublicID, areaID, name, systemID string, combination int) (*Area, error) {
	const q = `
update project_areas a
set name = coalesce(nullif($4,''), a.name),
    system_id = coalesce(nullif($5,''), a.system_id),
    combination = case when $6 > 0 then $6 else a.combination end,
    updated_at = now()
from projects p
where p.id = a.project_id
  and p.user_id = $1::uuid and p.public_id = $2 and p.deleted_at is null
  and a.id = $3::uuid
returning a.id::text, p.public_id, a.name, a.system_id, a.combination, a.created_at, a.updated_at;
`
	var a Area
	err := r.db.QueryRow(ctx, q, userDBID, projectPublicID, areaID, name, systemID, combination).
		Scan(&a.ID, &a.ProjectID, &a.Name, &a.SystemID, &a.Combination, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repo) DeleteArea(ctx context.Context, userDBID, projectPublicID, areaID string) (bool, error) {
	const q = `
delete from project_areas a
using projects p
where p.id = a.project_id
  and p.user_id = $1::uuid and p.public_id = $2 and p.deleted_at is null
  and a.id = $3::uuid;
`
	ct, err := r.db.Exec(ctx, q, userDBID, projectPublicID, areaID)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
