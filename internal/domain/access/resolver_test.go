package access

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	vo "repoaccess/internal/domain/access/valueobjects"
)

func TestResolveMaster(t *testing.T) {
	table := newTable(t, -1,
		vo.Priority{Name: "administrator", Weight: 30},
		vo.Priority{Name: "embargo", Weight: 20},
		vo.Priority{Name: "openaccess", Weight: 10},
	)

	open := newPolicy(t, 1, "openaccess", nil, nil)
	embargo := newPolicy(t, 2, "Embargo", nil, nil)
	admin := newPolicy(t, 3, "ADMINISTRATOR", nil, nil)
	custom := newPolicy(t, 4, "UCLouvain networks restriction", nil, nil)

	tests := []struct {
		name     string
		policies []*ResourcePolicy
		want     *ResourcePolicy
	}{
		{name: "empty", policies: nil, want: nil},
		{name: "single", policies: []*ResourcePolicy{open}, want: open},
		{name: "highest weight wins", policies: []*ResourcePolicy{open, admin, embargo}, want: admin},
		{name: "names match case-insensitively", policies: []*ResourcePolicy{open, embargo}, want: embargo},
		{name: "unlisted name gets default weight", policies: []*ResourcePolicy{custom, open}, want: open},
		{name: "only unlisted names", policies: []*ResourcePolicy{custom}, want: custom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, ResolveMaster(tt.policies, table))
		})
	}
}

func TestResolveMaster_TiesKeepFirst(t *testing.T) {
	table := newTable(t, 0, vo.Priority{Name: "embargo", Weight: 5}, vo.Priority{Name: "restricted", Weight: 5})

	first := newPolicy(t, 1, "embargo", nil, nil)
	second := newPolicy(t, 2, "restricted", nil, nil)
	third := newPolicy(t, 3, "embargo", nil, nil)

	assert.Same(t, first, ResolveMaster([]*ResourcePolicy{first, second, third}, table))
	assert.Same(t, second, ResolveMaster([]*ResourcePolicy{second, third, first}, table))
	assert.Same(t, third, ResolveMaster([]*ResourcePolicy{third, first, second}, table))
}

func TestResolveMaster_MinimalWeightNeverWins(t *testing.T) {
	table := newTable(t, math.MinInt, vo.Priority{Name: "embargo", Weight: 1})

	custom := newPolicy(t, 1, "UCLouvain networks restriction", nil, nil)
	embargo := newPolicy(t, 2, "embargo", nil, nil)

	assert.Nil(t, ResolveMaster([]*ResourcePolicy{custom}, table))
	assert.Same(t, embargo, ResolveMaster([]*ResourcePolicy{custom, embargo}, table))
}
