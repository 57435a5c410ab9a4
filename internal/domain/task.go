package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	minAssigneesCount = 1
	maxAssigneesCount = 10
)

// Task is the aggregate root of the lifecycle. It owns its solutions and the
// current state variant; persistence is the caller's concern, all mutation
// here is in-memory.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    TaskPriority
	Deadline    Deadline
	Owner       *User
	Assignees   []*User
	Solutions   []*Solution
	ChangedAt   time.Time

	// Version backs the optimistic concurrency check at the persistence
	// boundary. Zero for tasks that were never stored.
	Version uint

	state taskState
}

func NewTask(title, description string, priority TaskPriority, deadline Deadline, status TaskStatus, owner *User, assignees []*User) (*Task, error) {
	return RehydrateTask(uuid.NewString(), title, description, priority, deadline, status, owner, assignees, nil, time.Now().UTC(), 0)
}

// RehydrateTask rebuilds a task from stored attributes. The assignee range
// invariant is checked on both paths.
func RehydrateTask(id, title, description string, priority TaskPriority, deadline Deadline, status TaskStatus, owner *User, assignees []*User, solutions []*Solution, changedAt time.Time, version uint) (*Task, error) {
	if len(assignees) < minAssigneesCount || len(assignees) > maxAssigneesCount {
		return nil, NewAssigneeCountOutOfRange(minAssigneesCount, maxAssigneesCount, len(assignees))
	}

	return &Task{
		ID:          id,
		Title:       title,
		Description: description,
		Priority:    priority,
		Deadline:    deadline,
		Owner:       owner,
		Assignees:   assignees,
		Solutions:   solutions,
		ChangedAt:   changedAt,
		Version:     version,
		state:       stateForStatus(status),
	}, nil
}

func (t *Task) Status() TaskStatus {
	return t.state.status()
}

// MarkAsCompleted moves a pending task to on-review. Wall-clock expiry is
// checked before the state is consulted: an expired task is force-moved to
// the expired variant and the call reports ErrTaskExpired even when the
// stale state would have answered differently.
func (t *Task) MarkAsCompleted() error {
	return t.markAsCompletedAt(time.Now())
}

func (t *Task) markAsCompletedAt(now time.Time) error {
	if t.isExpiredAt(now) {
		if t.state != stateExpired {
			t.state = stateExpired
			t.ChangedAt = now.UTC()
		}
		_, err := t.state.markAsCompleted()
		return err
	}

	next, err := t.state.markAsCompleted()
	if err != nil {
		return err
	}

	t.state = next
	t.ChangedAt = now.UTC()
	return nil
}

// EvaluateCompletion resolves an on-review task against a review: accepted
// approves it, rejected sends it back to pending.
func (t *Task) EvaluateCompletion(review *Review) error {
	next, err := t.state.evaluateCompletion(review)
	if err != nil {
		return err
	}

	t.state = next
	t.ChangedAt = time.Now().UTC()
	return nil
}

// ChangePriority is allowed only while the task is pending. The state guard
// authorizes the change; the priority value itself lives on the aggregate.
func (t *Task) ChangePriority(priority TaskPriority) error {
	if err := t.state.changePriority(); err != nil {
		return err
	}

	t.Priority = priority
	t.ChangedAt = time.Now().UTC()
	return nil
}

func (t *Task) IsExpired() bool {
	return t.isExpiredAt(time.Now())
}

func (t *Task) isExpiredAt(now time.Time) bool {
	return !now.Before(t.Deadline.Time())
}

// TaskSummary is the read-model row returned by the owned/assigned queries.
type TaskSummary struct {
	ID        string
	Title     string
	Priority  TaskPriority
	Status    TaskStatus
	Deadline  time.Time
	ChangedAt time.Time
}
