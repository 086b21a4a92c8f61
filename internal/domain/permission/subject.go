package permission

import "strings"

const (
	groupPrefix      = "group:"
	collectionPrefix = "collection:"
	rolePrefix       = "role:"
)

// GroupSubject names a group in the directory, as opposed to a person.
func GroupSubject(name string) string {
	return groupPrefix + name
}

// CollectionRole names the role group of a collection, e.g.
// "collection:42:reviewer".
func CollectionRole(collectionID, role string) string {
	return collectionPrefix + collectionID + ":" + role
}

// RepositoryRole names a repository-wide role such as administrators.
func RepositoryRole(role string) string {
	return rolePrefix + role
}

// IsPerson reports whether subject is an account rather than a group or
// a role.
func IsPerson(subject string) bool {
	return subject != "" &&
		!strings.HasPrefix(subject, groupPrefix) &&
		!strings.HasPrefix(subject, collectionPrefix) &&
		!strings.HasPrefix(subject, rolePrefix)
}
