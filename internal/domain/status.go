package domain

type TaskStatus string

const (
	TaskStatusPending  TaskStatus = "pending"
	TaskStatusOnReview TaskStatus = "on-review"
	TaskStatusApproved TaskStatus = "approved"
	TaskStatusExpired  TaskStatus = "expired"
)

// NewTaskStatus defaults to pending when no value is given.
func NewTaskStatus(value string) (TaskStatus, error) {
	if value == "" {
		return TaskStatusPending, nil
	}
	switch TaskStatus(value) {
	case TaskStatusPending, TaskStatusOnReview, TaskStatusApproved, TaskStatusExpired:
		return TaskStatus(value), nil
	default:
		return "", NewInvalidTaskStatus(value)
	}
}

type ReviewStatus string

const (
	ReviewStatusAccepted ReviewStatus = "accepted"
	ReviewStatusRejected ReviewStatus = "rejected"
)

func NewReviewStatus(value string) (ReviewStatus, error) {
	switch ReviewStatus(value) {
	case ReviewStatusAccepted, ReviewStatusRejected:
		return ReviewStatus(value), nil
	default:
		return "", NewInvalidReviewStatus(value)
	}
}

type SolutionStatus string

const (
	SolutionStatusPending  SolutionStatus = "pending"
	SolutionStatusReviewed SolutionStatus = "reviewed"
)

func NewSolutionStatus(value string) (SolutionStatus, error) {
	switch SolutionStatus(value) {
	case SolutionStatusPending, SolutionStatusReviewed:
		return SolutionStatus(value), nil
	default:
		return "", NewInvalidSolutionStatus(value)
	}
}
