package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formgate/formgate/internal/domain/entity"
	"github.com/formgate/formgate/internal/domain/repository"
)

type FormRepository struct {
	pool *pgxpool.Pool
}

func NewFormRepository(pool *pgxpool.Pool) *FormRepository {
	return &FormRepository{pool: pool}
}

// Create inserts the form and its fields in one transaction.
func (r *FormRepository) Create(ctx context.Context, f *entity.Form) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO forms (name, description)
			VALUES ($1, $2)
			RETURNING id, created_at, updated_at
		`, f.Name, f.Description)
		if err := row.Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return err
		}
		for i := range f.Fields {
			fld := &f.Fields[i]
			fld.FormID = f.ID
			row := tx.QueryRow(ctx, `
				INSERT INTO form_fields (form_id, name, type, required)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`, fld.FormID, fld.Name, string(fld.Type), fld.Required)
			if err := row.Scan(&fld.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *FormRepository) List(ctx context.Context) ([]*entity.Form, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM forms
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	forms := []*entity.Form{}
	for rows.Next() {
		f := &entity.Form{}
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, f := range forms {
		fields, err := r.listFields(ctx, f.ID)
		if err != nil {
			return nil, err
		}
		f.Fields = fields
	}
	return forms, nil
}

func (r *FormRepository) GetByID(ctx context.Context, id string) (*entity.Form, error) {
	f := &entity.Form{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM forms
		WHERE id = $1
	`, id)

	if err := row.Scan(&f.ID, &f.Name, &f.Description, &f.CreatedAt, &f.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	fields, err := r.listFields(ctx, f.ID)
	if err != nil {
		return nil, err
	}
	f.Fields = fields
	return f, nil
}

// Update changes name and description only; fields are immutable after
// creation.
func (r *FormRepository) Update(ctx context.Context, f *entity.Form) error {
	f.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE forms
		SET name = $1, description = $2, updated_at = $3
		WHERE id = $4
	`, f.Name, f.Description, f.UpdatedAt, f.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *FormRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM forms WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *FormRepository) CreateResponse(ctx context.Context, resp *entity.FormResponse) error {
	answers, err := json.Marshal(resp.Answers)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO form_responses (form_id, answers)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, resp.FormID, answers)
	return row.Scan(&resp.ID, &resp.CreatedAt)
}

func (r *FormRepository) ListResponses(ctx context.Context, formID string) ([]*entity.FormResponse, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, form_id, answers, created_at
		FROM form_responses
		WHERE form_id = $1
		ORDER BY created_at DESC
	`, formID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := []*entity.FormResponse{}
	for rows.Next() {
		resp := &entity.FormResponse{}
		var answers []byte
		if err := rows.Scan(&resp.ID, &resp.FormID, &answers, &resp.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(answers, &resp.Answers); err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}

func (r *FormRepository) listFields(ctx context.Context, formID string) ([]entity.FormField, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, form_id, name, type, required
		FROM form_fields
		WHERE form_id = $1
		ORDER BY id
	`, formID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := []entity.FormField{}
	for rows.Next() {
		var fld entity.FormField
		var typ string
		if err := rows.Scan(&fld.ID, &fld.FormID, &fld.Name, &typ, &fld.Required); err != nil {
			return nil, err
		}
		fld.Type = entity.FieldType(typ)
		fields = append(fields, fld)
	}
	return fields, rows.Err()
}

var _ repository.FormRepository = (*FormRepository)(nil)
