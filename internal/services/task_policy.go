package services

import "task-desk.com/task-desk/internal/domain"

// TaskPolicy encodes who may create, change and list tasks. Stateless; kept
// apart from the entity invariants on purpose.
type TaskPolicy struct{}

func (TaskPolicy) CanFetchOwned(userID string, role domain.Role, ownerID string) bool {
	return userID == ownerID || role == domain.RoleAdmin
}

func (TaskPolicy) CanFetchAssigned(userID string, role domain.Role, assigneeID string) bool {
	return userID == assigneeID || role == domain.RoleAdmin
}

// CanCreateTask: members never create tasks, supervisors may only assign
// members, admins may assign anyone but other admins.
func (TaskPolicy) CanCreateTask(owner *domain.User, assignees []*domain.User) bool {
	switch owner.Role {
	case domain.RoleMember:
		return false
	case domain.RoleSupervisor:
		for _, a := range assignees {
			if a.Role == domain.RoleSupervisor || a.Role == domain.RoleAdmin {
				return false
			}
		}
		return true
	case domain.RoleAdmin:
		for _, a := range assignees {
			if a.Role == domain.RoleAdmin {
				return false
			}
		}
		return true
	}
	return false
}

func (TaskPolicy) CanChangeTask(userID string, role domain.Role, task *domain.Task) bool {
	if role == domain.RoleMember {
		return false
	}
	if role == domain.RoleSupervisor && task.Owner.ID != userID {
		return false
	}
	return true
}
