package entity

// Role is derived from group membership, never stored on the user.
type Role string

const (
	RoleManager      Role = "manager"
	RoleDeliveryCrew Role = "delivery_crew"
	RoleCustomer     Role = "customer"
)

// Group names backing the staff roles.
const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery crew"
)

// Roles is the set of valid role slugs, in priority order.
var Roles = []Role{RoleManager, RoleDeliveryCrew, RoleCustomer}

// ResolveRoles derives the user's roles from its (preloaded) group
// memberships, ordered manager > delivery_crew > customer. A user in
// neither staff group is a customer, so the result is never empty.
func ResolveRoles(u *User) []Role {
	var roles []Role
	for _, g := range u.Groups {
		if g.Name == GroupManager {
			roles = append(roles, RoleManager)
			break
		}
	}
	for _, g := range u.Groups {
		if g.Name == GroupDeliveryCrew {
			roles = append(roles, RoleDeliveryCrew)
			break
		}
	}
	if len(roles) == 0 {
		roles = append(roles, RoleCustomer)
	}
	return roles
}

// PrimaryRole is the first (highest-priority) resolved role; it decides
// view routing when a user somehow holds both staff memberships.
func PrimaryRole(u *User) Role {
	return ResolveRoles(u)[0]
}

// HasRole reports whether role is among the resolved roles.
func HasRole(roles []Role, role Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
