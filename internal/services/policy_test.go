package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-desk.com/task-desk/internal/domain"
)

func userWithRole(role domain.Role) *domain.User {
	return domain.NewUser(string(role)+"@example.com", string(role), "hash", role)
}

func TestTaskPolicy_CanCreateTask(t *testing.T) {
	policy := TaskPolicy{}

	member := userWithRole(domain.RoleMember)
	supervisor := userWithRole(domain.RoleSupervisor)
	admin := userWithRole(domain.RoleAdmin)

	cases := []struct {
		name      string
		owner     *domain.User
		assignees []*domain.User
		want      bool
	}{
		{"member never creates", member, []*domain.User{userWithRole(domain.RoleMember)}, false},
		{"supervisor assigns member", supervisor, []*domain.User{userWithRole(domain.RoleMember)}, true},
		{"supervisor cannot assign supervisor", supervisor, []*domain.User{userWithRole(domain.RoleSupervisor)}, false},
		{"supervisor cannot assign admin", supervisor, []*domain.User{userWithRole(domain.RoleAdmin)}, false},
		{"supervisor caught by one bad assignee", supervisor, []*domain.User{userWithRole(domain.RoleMember), userWithRole(domain.RoleAdmin)}, false},
		{"admin assigns member and supervisor", admin, []*domain.User{userWithRole(domain.RoleMember), userWithRole(domain.RoleSupervisor)}, true},
		{"admin cannot assign admin", admin, []*domain.User{userWithRole(domain.RoleAdmin)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, policy.CanCreateTask(tc.owner, tc.assignees))
		})
	}
}

func TestTaskPolicy_CanChangeTask(t *testing.T) {
	policy := TaskPolicy{}

	owner := userWithRole(domain.RoleSupervisor)
	other := userWithRole(domain.RoleSupervisor)
	assignee := userWithRole(domain.RoleMember)

	task, err := domain.RehydrateTask(
		"task-1", "t", "d",
		domain.PriorityLow, domain.DeadlineFromTime(time.Now().Add(3*time.Hour)), domain.TaskStatusPending,
		owner, []*domain.User{assignee}, nil, time.Now().UTC(), 1,
	)
	require.NoError(t, err)

	assert.False(t, policy.CanChangeTask(assignee.ID, domain.RoleMember, task))
	assert.True(t, policy.CanChangeTask(owner.ID, domain.RoleSupervisor, task))
	assert.False(t, policy.CanChangeTask(other.ID, domain.RoleSupervisor, task), "supervisor may only change own tasks")
	assert.True(t, policy.CanChangeTask("someone-else", domain.RoleAdmin, task))
}

func TestTaskPolicy_Fetch(t *testing.T) {
	policy := TaskPolicy{}

	assert.True(t, policy.CanFetchOwned("u1", domain.RoleMember, "u1"))
	assert.False(t, policy.CanFetchOwned("u1", domain.RoleSupervisor, "u2"))
	assert.True(t, policy.CanFetchOwned("u1", domain.RoleAdmin, "u2"))

	assert.True(t, policy.CanFetchAssigned("u1", domain.RoleMember, "u1"))
	assert.False(t, policy.CanFetchAssigned("u1", domain.RoleSupervisor, "u2"))
	assert.True(t, policy.CanFetchAssigned("u1", domain.RoleAdmin, "u2"))
}

func TestReviewPolicy_CanCreate(t *testing.T) {
	policy := ReviewPolicy{}

	creator := userWithRole(domain.RoleMember)
	reviewer := userWithRole(domain.RoleSupervisor)
	solution := &domain.Solution{ID: "s1", CreatorID: creator.ID}

	assert.True(t, policy.CanCreate(solution, creator))
	assert.False(t, policy.CanCreate(solution, reviewer))
}
