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

type instanceRepository struct {
	db       *sql.DB
	executor DBExecutor
}

func NewInstanceRepository(db *sql.DB) *instanceRepository {
	return &instanceRepository{db: db, executor: db}
}

func (r *instanceRepository) Create(ctx context.Context, instance *domain.ChecklistInstance, steps []*domain.InstanceStep) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if instance.ID == "" {
		instance.ID = uuid.NewString()
	}

	query := `
		INSERT INTO checklist_instances (id, template_id, user_id, status, started_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING started_at
	`
	err = tx.QueryRowContext(
		ctx,
		query,
		instance.ID,
		instance.TemplateID,
		instance.UserID,
		string(instance.Status),
		time.Now(),
	).Scan(&instance.StartedAt)
	if err != nil {
		return err
	}

	stepQuery := `
		INSERT INTO checklist_instance_steps (id, instance_id, step_id, is_completed)
		VALUES ($1, $2, $3, $4)
	`
	for _, step := range steps {
		if step.ID == "" {
			step.ID = uuid.NewString()
		}
		step.InstanceID = instance.ID
		_, err := tx.ExecContext(ctx, stepQuery, step.ID, instance.ID, step.StepID, step.IsCompleted)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *instanceRepository) GetByID(ctx context.Context, id string) (*domain.ChecklistInstance, error) {
	query := `
		SELECT id, template_id, user_id, status, started_at, completed_at
		FROM checklist_instances
		WHERE id = $1
	`

	instance := &domain.ChecklistInstance{}
	var status string
	var completedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&instance.ID,
		&instance.TemplateID,
		&instance.UserID,
		&status,
		&instance.StartedAt,
		&completedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	instance.Status = domain.InstanceStatus(status)
	if completedAt.Valid {
		instance.CompletedAt = &completedAt.Time
	}

	return instance, nil
}

func (r *instanceRepository) GetSteps(ctx context.Context, instanceID string) ([]*domain.InstanceStep, error) {
	query := `
		SELECT ist.id, ist.instance_id, ist.step_id, s.step_text, s.order_index, ist.is_completed, ist.completed_at
		FROM checklist_instance_steps ist
		JOIN checklist_steps s ON ist.step_id = s.id
		WHERE ist.instance_id = $1
		ORDER BY s.order_index
	`

	rows, err := r.executor.QueryContext(ctx, query, instanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	steps := make([]*domain.InstanceStep, 0)
	for rows.Next() {
		step := &domain.InstanceStep{}
		var completedAt sql.NullTime
		err := rows.Scan(
			&step.ID,
			&step.InstanceID,
			&step.StepID,
			&step.StepText,
			&step.OrderIndex,
			&step.IsCompleted,
			&completedAt,
		)
		if err != nil {
			return nil, err
		}
		if completedAt.Valid {
			step.CompletedAt = &completedAt.Time
		}
		steps = append(steps, step)
	}

	return steps, rows.Err()
}

func (r *instanceRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.ChecklistInstance, error) {
	query := `
		SELECT id, template_id, user_id, status, started_at, completed_at
		FROM checklist_instances
		WHERE user_id = $1
		ORDER BY started_at DESC
	`

	rows, err := r.executor.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	instances := make([]*domain.ChecklistInstance, 0)
	for rows.Next() {
		instance := &domain.ChecklistInstance{}
		var status string
		var completedAt sql.NullTime
		err := rows.Scan(
			&instance.ID,
			&instance.TemplateID,
			&instance.UserID,
			&status,
			&instance.StartedAt,
			&completedAt,
		)
		if err != nil {
			return nil, err
		}
		instance.Status = domain.InstanceStatus(status)
		if completedAt.Valid {
			instance.CompletedAt = &completedAt.Time
		}
		instances = append(instances, instance)
	}

	return instances, rows.Err()
}

func (r *instanceRepository) SetStepCompletion(ctx context.Context, instanceID, stepID string, isCompleted bool, completedAt *time.Time) (*domain.InstanceStep, error) {
	query := `
		UPDATE checklist_instance_steps ist
		SET is_completed = $3, completed_at = $4
		FROM checklist_steps s
		WHERE ist.instance_id = $1 AND ist.step_id = $2 AND s.id = ist.step_id
		RETURNING ist.id, s.step_text, s.order_index
	`

	step := &domain.InstanceStep{
		InstanceID:  instanceID,
		StepID:      stepID,
		IsCompleted: isCompleted,
		CompletedAt: completedAt,
	}
	var completedAtArg sql.NullTime
	if completedAt != nil {
		completedAtArg = sql.NullTime{Time: *completedAt, Valid: true}
	}
	err := r.executor.QueryRowContext(ctx, query, instanceID, stepID, isCompleted, completedAtArg).
		Scan(&step.ID, &step.StepText, &step.OrderIndex)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return step, nil
}

func (r *instanceRepository) Complete(ctx context.Context, instanceID string, completedAt time.Time) (*domain.ChecklistInstance, error) {
	query := `
		UPDATE checklist_instances
		SET status = $2, completed_at = $3
		WHERE id = $1
		RETURNING id, template_id, user_id, status, started_at, completed_at
	`

	instance := &domain.ChecklistInstance{}
	var status string
	var completed sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, instanceID, string(domain.InstanceCompleted), completedAt).Scan(
		&instance.ID,
		&instance.TemplateID,
		&instance.UserID,
		&status,
		&instance.StartedAt,
		&completed,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	instance.Status = domain.InstanceStatus(status)
	if completed.Valid {
		instance.CompletedAt = &completed.Time
	}

	return instance, nil
}
