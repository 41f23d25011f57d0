package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func steps(completed, total int) []*InstanceStep {
	result := make([]*InstanceStep, 0, total)
	for i := 0; i < total; i++ {
		result = append(result, &InstanceStep{IsCompleted: i < completed})
	}
	return result
}

func TestComputeProgress(t *testing.T) {
	t.Run("нет шагов - ноль процентов", func(t *testing.T) {
		progress := ComputeProgress(nil)

		assert.Equal(t, 0, progress.TotalSteps)
		assert.Equal(t, 0, progress.CompletedSteps)
		assert.Equal(t, 0, progress.Progress)
	})

	t.Run("ни один шаг не выполнен", func(t *testing.T) {
		progress := ComputeProgress(steps(0, 4))

		assert.Equal(t, 4, progress.TotalSteps)
		assert.Equal(t, 0, progress.CompletedSteps)
		assert.Equal(t, 0, progress.Progress)
	})

	t.Run("частичное выполнение округляется до ближайшего", func(t *testing.T) {
		// 1/3 = 33.33 -> 33, 2/3 = 66.67 -> 67
		assert.Equal(t, 33, ComputeProgress(steps(1, 3)).Progress)
		assert.Equal(t, 67, ComputeProgress(steps(2, 3)).Progress)
	})

	t.Run("половина шагов", func(t *testing.T) {
		progress := ComputeProgress(steps(2, 4))

		assert.Equal(t, 50, progress.Progress)
	})

	t.Run("все шаги выполнены", func(t *testing.T) {
		progress := ComputeProgress(steps(5, 5))

		assert.Equal(t, 5, progress.CompletedSteps)
		assert.Equal(t, 100, progress.Progress)
	})
}
