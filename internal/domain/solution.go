package domain

import (
	"time"

	"github.com/google/uuid"
)

// Solution is one submission attempt against a task. It is created only on
// the pending -> on-review transition; earlier solutions stay around as
// history.
type Solution struct {
	ID                string
	Task              *Task
	File              *File
	CreatorID         string
	AdditionalDetails string
	Status            SolutionStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Version           uint
}

func NewSolution(task *Task, file *File, creatorID, additionalDetails string) *Solution {
	now := time.Now().UTC()
	return &Solution{
		ID:                uuid.NewString(),
		Task:              task,
		File:              file,
		CreatorID:         creatorID,
		AdditionalDetails: additionalDetails,
		Status:            SolutionStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func RehydrateSolution(id string, task *Task, file *File, creatorID, additionalDetails string, status SolutionStatus, createdAt, updatedAt time.Time, version uint) *Solution {
	return &Solution{
		ID:                id,
		Task:              task,
		File:              file,
		CreatorID:         creatorID,
		AdditionalDetails: additionalDetails,
		Status:            status,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
		Version:           version,
	}
}

// MarkAsReviewed carries no guard; the review use case calls it only after
// the task accepted the evaluation.
func (s *Solution) MarkAsReviewed() {
	s.Status = SolutionStatusReviewed
	s.UpdatedAt = time.Now().UTC()
}
