package domain

import (
	"math"
	"time"
)

type InstanceStatus string

const (
	InstanceInProgress InstanceStatus = "in_progress"
	InstanceCompleted  InstanceStatus = "completed"
	// InstancePaused зарезервирован: ни одна операция его не устанавливает
	InstancePaused InstanceStatus = "paused"
)

type ChecklistInstance struct {
	ID          string
	TemplateID  string
	UserID      string
	Status      InstanceStatus
	StartedAt   time.Time
	CompletedAt *time.Time
}

type InstanceStep struct {
	ID          string
	InstanceID  string
	StepID      string
	StepText    string
	OrderIndex  int
	IsCompleted bool
	CompletedAt *time.Time
}

// InstanceProgress - производное состояние, вычисляется на каждое чтение
type InstanceProgress struct {
	Progress       int
	TotalSteps     int
	CompletedSteps int
}

// InstanceWithProgress - экземпляр в списке, аннотированный прогрессом
type InstanceWithProgress struct {
	Instance *ChecklistInstance
	Progress InstanceProgress
}

// ComputeProgress считает прогресс по шагам экземпляра.
// При нуле шагов прогресс определен как 0.
func ComputeProgress(steps []*InstanceStep) InstanceProgress {
	total := len(steps)
	completed := 0
	for _, step := range steps {
		if step.IsCompleted {
			completed++
		}
	}

	progress := 0
	if total > 0 {
		progress = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return InstanceProgress{
		Progress:       progress,
		TotalSteps:     total,
		CompletedSteps: completed,
	}
}
