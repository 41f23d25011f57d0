package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/bagdasarian/team-checklist/internal/repository"
	"github.com/google/uuid"
)

type templateRepository struct {
	db       *sql.DB
	executor DBExecutor
}

func NewTemplateRepository(db *sql.DB) *templateRepository {
	return &templateRepository{db: db, executor: db}
}

func (r *templateRepository) Create(ctx context.Context, template *domain.ChecklistTemplate, steps []*domain.ChecklistStep) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if template.ID == "" {
		template.ID = uuid.NewString()
	}

	query := `
		INSERT INTO checklist_templates (id, user_id, title, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING created_at, updated_at
	`
	now := time.Now()
	err = tx.QueryRowContext(ctx, query, template.ID, template.UserID, template.Title, now).
		Scan(&template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertSteps(ctx, tx, template.ID, steps); err != nil {
		return err
	}
	template.StepCount = len(steps)

	return tx.Commit()
}

func insertSteps(ctx context.Context, tx *sql.Tx, templateID string, steps []*domain.ChecklistStep) error {
	query := `
		INSERT INTO checklist_steps (id, template_id, step_text, order_index, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	now := time.Now()
	for _, step := range steps {
		if step.ID == "" {
			step.ID = uuid.NewString()
		}
		step.TemplateID = templateID
		err := tx.QueryRowContext(ctx, query, step.ID, templateID, step.StepText, step.OrderIndex, now).
			Scan(&step.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *templateRepository) GetByID(ctx context.Context, id string) (*domain.ChecklistTemplate, error) {
	query := `
		SELECT t.id, t.user_id, t.title, t.created_at, t.updated_at,
		       (SELECT COUNT(*) FROM checklist_steps s WHERE s.template_id = t.id)
		FROM checklist_templates t
		WHERE t.id = $1
	`

	template := &domain.ChecklistTemplate{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&template.ID,
		&template.UserID,
		&template.Title,
		&template.CreatedAt,
		&template.UpdatedAt,
		&template.StepCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return template, nil
}

func (r *templateRepository) GetSteps(ctx context.Context, templateID string) ([]*domain.ChecklistStep, error) {
	query := `
		SELECT id, template_id, step_text, order_index, created_at
		FROM checklist_steps
		WHERE template_id = $1
		ORDER BY order_index
	`

	rows, err := r.executor.QueryContext(ctx, query, templateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	steps := make([]*domain.ChecklistStep, 0)
	for rows.Next() {
		step := &domain.ChecklistStep{}
		err := rows.Scan(&step.ID, &step.TemplateID, &step.StepText, &step.OrderIndex, &step.CreatedAt)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}

	return steps, rows.Err()
}

func (r *templateRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.ChecklistTemplate, error) {
	query := `
		SELECT t.id, t.user_id, t.title, t.created_at, t.updated_at,
		       (SELECT COUNT(*) FROM checklist_steps s WHERE s.template_id = t.id)
		FROM checklist_templates t
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC
	`

	rows, err := r.executor.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]*domain.ChecklistTemplate, 0)
	for rows.Next() {
		template := &domain.ChecklistTemplate{}
		err := rows.Scan(
			&template.ID,
			&template.UserID,
			&template.Title,
			&template.CreatedAt,
			&template.UpdatedAt,
			&template.StepCount,
		)
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}

	return templates, rows.Err()
}

func (r *templateRepository) Update(ctx context.Context, template *domain.ChecklistTemplate, steps []*domain.ChecklistStep) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE checklist_templates
		SET title = $2, updated_at = $3
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	err = tx.QueryRowContext(ctx, query, template.ID, template.Title, time.Now()).
		Scan(&template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}

	// шаги заменяются целиком
	_, err = tx.ExecContext(ctx, `DELETE FROM checklist_steps WHERE template_id = $1`, template.ID)
	if err != nil {
		return err
	}

	if err := insertSteps(ctx, tx, template.ID, steps); err != nil {
		return err
	}
	template.StepCount = len(steps)

	return tx.Commit()
}

func (r *templateRepository) Delete(ctx context.Context, id string) error {
	// шаги, экземпляры, шаринги, избранное и отзывы удаляются каскадом
	result, err := r.executor.ExecContext(ctx, `DELETE FROM checklist_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
