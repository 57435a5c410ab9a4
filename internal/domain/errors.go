package domain

import "fmt"

// ErrorKind classifies a domain error. The HTTP layer maps kinds to status
// codes; nothing below the edge depends on transport semantics.
type ErrorKind string

const (
	KindValidation   ErrorKind = "Validation"
	KindUnauthorized ErrorKind = "Unauthorized"
	KindForbidden    ErrorKind = "Forbidden"
	KindNotFound     ErrorKind = "NotFound"
	KindConflict     ErrorKind = "Conflict"
	KindInternal     ErrorKind = "Internal"
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf returns the kind of a domain error, or KindInternal for anything
// that is not one.
func KindOf(err error) ErrorKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindInternal
}

var (
	ErrDeadlineTooSoon = &Error{KindValidation, "deadline must be at least two hours from now"}

	ErrTaskNotPending  = &Error{KindValidation, `the task status must be "pending" to mark it as completed`}
	ErrTaskNotOnReview = &Error{KindValidation, `the task status must be "on-review" to review it`}
	ErrTaskExpired     = &Error{KindValidation, "the deadline of the task is over, task status set to expired"}

	ErrSomeAssigneesNotFound        = &Error{KindValidation, "some of the assignees were not found"}
	ErrAssigneesMustBeLowerRole     = &Error{KindValidation, "task cannot be created by a member and assignees must be of lower role than yours"}
	ErrTaskCannotBeChangedByUser    = &Error{KindForbidden, "task cannot be changed by you"}
	ErrReviewCannotBeCreatedByMember = &Error{KindForbidden, "you have no permissions to review the task"}

	ErrInvalidCredentials = &Error{KindUnauthorized, "invalid email or password"}
	ErrSessionNotFound    = &Error{KindUnauthorized, "refresh token is unknown or revoked"}

	ErrUnexpected = &Error{KindInternal, "something unexpected happened while processing your request, please try again"}
)

func NewAssigneeCountOutOfRange(min, max, provided int) *Error {
	return &Error{KindValidation, fmt.Sprintf("assignees count must be in range %d and %d inclusive, you provided %d assignees", min, max, provided)}
}

func NewPriorityChangeNotAllowed(current TaskStatus) *Error {
	return &Error{KindValidation, fmt.Sprintf("task priority can be changed only on pending tasks, the task's status is %s", current)}
}

func NewInvalidPriority(value string) *Error {
	return &Error{KindValidation, fmt.Sprintf("invalid task priority: %q", value)}
}

func NewInvalidTaskStatus(value string) *Error {
	return &Error{KindValidation, fmt.Sprintf("invalid task status: %q", value)}
}

func NewInvalidReviewStatus(value string) *Error {
	return &Error{KindValidation, fmt.Sprintf("invalid review status: %q", value)}
}

func NewInvalidSolutionStatus(value string) *Error {
	return &Error{KindValidation, fmt.Sprintf("invalid solution status: %q", value)}
}

func NewInvalidRole(value string) *Error {
	return &Error{KindValidation, fmt.Sprintf("invalid role: %q", value)}
}

func NewTaskNotFound(id string) *Error {
	return &Error{KindNotFound, fmt.Sprintf("task with id %q was not found", id)}
}

func NewSolutionNotFound(id string) *Error {
	return &Error{KindNotFound, fmt.Sprintf("solution with id %q was not found", id)}
}

func NewUserNotFound(id string) *Error {
	return &Error{KindNotFound, fmt.Sprintf("user with id %q was not found", id)}
}

func NewFileNotFound(id string) *Error {
	return &Error{KindNotFound, fmt.Sprintf("file with id %q was not found", id)}
}

func NewTasksCannotBeFetchedByRole(role Role) *Error {
	return &Error{KindForbidden, fmt.Sprintf("the tasks cannot be fetched with your role, your role is %s", role)}
}
