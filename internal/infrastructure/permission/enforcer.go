package permission

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"repoaccess/internal/domain/permission"
	"repoaccess/internal/shared/logger"
)

var _ permission.ManagerDirectory = (*Directory)(nil)

// Only the role graph is used: people and groups are members of groups,
// groups are members of collection and repository roles.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Directory is an in-memory ManagerDirectory backed by a casbin role graph.
type Directory struct {
	enforcer    *casbin.Enforcer
	mu          sync.RWMutex
	managerRole string
	adminRole   string
	logger      logger.Interface
}

func NewDirectory(managerRole, adminRole string, log logger.Interface) (*Directory, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	return &Directory{
		enforcer:    enforcer,
		managerRole: managerRole,
		adminRole:   adminRole,
		logger:      log,
	}, nil
}

// AddGroupMember makes member (an email or a GroupSubject) part of group.
func (d *Directory) AddGroupMember(group, member string) error {
	return d.link(member, permission.GroupSubject(group))
}

// AssignManagers makes subject a manager of the collection.
func (d *Directory) AssignManagers(collectionID, subject string) error {
	return d.link(subject, permission.CollectionRole(collectionID, d.managerRole))
}

// AddAdmin makes subject a repository administrator.
func (d *Directory) AddAdmin(subject string) error {
	return d.link(subject, permission.RepositoryRole(d.adminRole))
}

func (d *Directory) link(member, group string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := d.enforcer.AddGroupingPolicy(member, group); err != nil {
		d.logger.Errorw("failed to add membership", "error", err, "member", member, "group", group)
		return fmt.Errorf("failed to add %s to %s: %w", member, group, err)
	}
	return nil
}

func (d *Directory) ManagersOf(_ context.Context, collectionID string) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	role := permission.CollectionRole(collectionID, d.managerRole)
	subjects, err := d.enforcer.GetImplicitUsersForRole(role)
	if err != nil {
		return nil, fmt.Errorf("failed to get managers of collection %s: %w", collectionID, err)
	}

	managers := make([]string, 0, len(subjects))
	for _, s := range subjects {
		if permission.IsPerson(s) && !slices.Contains(managers, s) {
			managers = append(managers, s)
		}
	}
	slices.Sort(managers)
	return managers, nil
}

func (d *Directory) IsManager(_ context.Context, email, collectionID string) (bool, error) {
	return d.hasRole(email, permission.CollectionRole(collectionID, d.managerRole))
}

func (d *Directory) IsAdmin(_ context.Context, email string) (bool, error) {
	return d.hasRole(email, permission.RepositoryRole(d.adminRole))
}

func (d *Directory) hasRole(email, role string) (bool, error) {
	if email == "" {
		return false, nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	roles, err := d.enforcer.GetImplicitRolesForUser(email)
	if err != nil {
		return false, fmt.Errorf("failed to get roles for %s: %w", email, err)
	}
	return slices.Contains(roles, role), nil
}
