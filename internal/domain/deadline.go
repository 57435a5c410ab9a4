package domain

import "time"

// minDeadlineLead is how far into the future a deadline must be at creation.
const minDeadlineLead = 2 * time.Hour

// Deadline is the validated due instant of a task. NewDeadline enforces the
// two-hour lead; DeadlineFromTime rehydrates stored values and must not,
// because persisted tasks can legitimately carry deadlines that passed.
type Deadline struct {
	value time.Time
}

func NewDeadline(value time.Time) (Deadline, error) {
	return newDeadlineAt(value, time.Now())
}

func newDeadlineAt(value, now time.Time) (Deadline, error) {
	if !value.After(now.Add(minDeadlineLead)) {
		return Deadline{}, ErrDeadlineTooSoon
	}
	return Deadline{value: value}, nil
}

func DeadlineFromTime(value time.Time) Deadline {
	return Deadline{value: value}
}

func (d Deadline) Time() time.Time {
	return d.value
}

func (d Deadline) Equal(other Deadline) bool {
	return d.value.Equal(other.value)
}
