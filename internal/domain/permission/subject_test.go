package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjects(t *testing.T) {
	assert.Equal(t, "group:thesis-committee", GroupSubject("thesis-committee"))
	assert.Equal(t, "collection:col-1:reviewer", CollectionRole("col-1", "reviewer"))
	assert.Equal(t, "role:admin", RepositoryRole("admin"))

	assert.True(t, IsPerson("promoter@uclouvain.be"))
	assert.False(t, IsPerson(GroupSubject("thesis-committee")))
	assert.False(t, IsPerson(CollectionRole("col-1", "reviewer")))
	assert.False(t, IsPerson(RepositoryRole("admin")))
	assert.False(t, IsPerson(""))
}
