package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is the evaluation of a solution. Immutable once created; the role
// gate is part of construction, not a separate policy.
type Review struct {
	ID        string
	Solution  *Solution
	Reviewer  *User
	Status    ReviewStatus
	Feedback  string
	CreatedAt time.Time
}

func NewReview(solution *Solution, reviewer *User, status ReviewStatus, feedback string) (*Review, error) {
	if reviewer.Role == RoleMember {
		return nil, ErrReviewCannotBeCreatedByMember
	}

	return &Review{
		ID:        uuid.NewString(),
		Solution:  solution,
		Reviewer:  reviewer,
		Status:    status,
		Feedback:  feedback,
		CreatedAt: time.Now().UTC(),
	}, nil
}
