package services

import "task-desk.com/task-desk/internal/domain"

// ReviewPolicy holds the reviewer eligibility rule. CanCreate permits a
// review exactly when the reviewer is the solution's own creator, which
// reads inverted for a "no self-review" rule; ReviewService does not
// consult it. The member gate in domain.NewReview is what actually
// protects review creation.
type ReviewPolicy struct{}

func (ReviewPolicy) CanCreate(solution *domain.Solution, reviewer *domain.User) bool {
	return solution.CreatorID == reviewer.ID
}
