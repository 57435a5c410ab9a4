package domain

import "fmt"

// taskState is the closed set of task lifecycle variants. Transitions live
// in the methods below as exhaustive switches, so the whole transition table
// is readable in one place:
//
//	pending   -- markAsCompleted -->  on-review
//	on-review -- evaluate(accepted) --> approved
//	on-review -- evaluate(rejected) --> pending
//	pending   -- changePriority --> pending (guard only)
//
// Every other combination fails with the wrong-status error for the
// operation; expired additionally reports ErrTaskExpired on markAsCompleted.
type taskState int

const (
	statePending taskState = iota
	stateOnReview
	stateApproved
	stateExpired
)

func stateForStatus(status TaskStatus) taskState {
	switch status {
	case TaskStatusPending:
		return statePending
	case TaskStatusOnReview:
		return stateOnReview
	case TaskStatusApproved:
		return stateApproved
	case TaskStatusExpired:
		return stateExpired
	}
	panic(fmt.Sprintf("unknown task status: %q", status))
}

func (s taskState) status() TaskStatus {
	switch s {
	case statePending:
		return TaskStatusPending
	case stateOnReview:
		return TaskStatusOnReview
	case stateApproved:
		return TaskStatusApproved
	case stateExpired:
		return TaskStatusExpired
	}
	panic(fmt.Sprintf("unknown task state: %d", s))
}

func (s taskState) markAsCompleted() (taskState, error) {
	switch s {
	case statePending:
		return stateOnReview, nil
	case stateOnReview, stateApproved:
		return s, ErrTaskNotPending
	case stateExpired:
		return s, ErrTaskExpired
	}
	panic(fmt.Sprintf("unknown task state: %d", s))
}

func (s taskState) evaluateCompletion(review *Review) (taskState, error) {
	switch s {
	case stateOnReview:
		if review.Status == ReviewStatusAccepted {
			return stateApproved, nil
		}
		return statePending, nil
	case statePending, stateApproved, stateExpired:
		return s, ErrTaskNotOnReview
	}
	panic(fmt.Sprintf("unknown task state: %d", s))
}

func (s taskState) changePriority() error {
	switch s {
	case statePending:
		return nil
	case stateOnReview, stateApproved, stateExpired:
		return NewPriorityChangeNotAllowed(s.status())
	}
	panic(fmt.Sprintf("unknown task state: %d", s))
}
