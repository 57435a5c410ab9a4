package domain

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func NewTaskPriority(value string) (TaskPriority, error) {
	switch TaskPriority(value) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return TaskPriority(value), nil
	default:
		return "", NewInvalidPriority(value)
	}
}
