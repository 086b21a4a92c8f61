package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	vo "repoaccess/internal/domain/access/valueobjects"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time {
	return &t
}

// newPolicy builds a READ custom policy. lower and upper are the validity
// bounds, stored as end date and start date respectively.
func newPolicy(t *testing.T, id int, name string, lower, upper *time.Time) *ResourcePolicy {
	t.Helper()
	p, err := ReconstructResourcePolicy(id, name, "", vo.KindCustom, vo.ActionRead, upper, lower, "Anonymous", "")
	require.NoError(t, err)
	return p
}

func newTable(t *testing.T, defaultWeight int, priorities ...vo.Priority) *vo.PriorityTable {
	t.Helper()
	table, err := vo.NewPriorityTable(priorities, defaultWeight)
	require.NoError(t, err)
	return table
}

func newItem(t *testing.T, id string) *Item {
	t.Helper()
	item, err := NewItem(id, "col-1", vo.StageArchived)
	require.NoError(t, err)
	return item
}

func addFile(t *testing.T, b *Bundle, id string, policies ...*ResourcePolicy) *Bitstream {
	t.Helper()
	bs, err := b.AddBitstream(id, id+".pdf")
	require.NoError(t, err)
	for _, p := range policies {
		bs.AddPolicy(p)
	}
	return bs
}

func addBundle(t *testing.T, item *Item, name string) *Bundle {
	t.Helper()
	b, err := item.AddBundle(name)
	require.NoError(t, err)
	return b
}
