package accesstype

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repoaccess/internal/domain/access"
	vo "repoaccess/internal/domain/access/valueobjects"
	"repoaccess/internal/shared/logger"
)

const field = "dcterms.accessRights"

var now = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func newRefresher(t *testing.T) *Refresher {
	t.Helper()
	table, err := vo.NewPriorityTable([]vo.Priority{
		{Name: "embargo", Weight: 10},
		{Name: "openaccess", Weight: 0},
	}, -1)
	require.NoError(t, err)

	engine, err := access.NewEngine(access.EngineConfig{
		Priorities:      table,
		MetadataField:   field,
		CanonicalBundle: "ORIGINAL",
	})
	require.NoError(t, err)
	return NewRefresher(engine, logger.NewNopLogger())
}

func newItem(t *testing.T, policyName string) *access.Item {
	t.Helper()
	item, err := access.NewItem("item-1", "col-1", vo.StageArchived)
	require.NoError(t, err)
	bundle, err := item.AddBundle("ORIGINAL")
	require.NoError(t, err)
	bs, err := bundle.AddBitstream("bs-1", "thesis.pdf")
	require.NoError(t, err)

	upper := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	p, err := access.NewResourcePolicy(policyName, vo.KindCustom, vo.ActionRead, &upper, nil)
	require.NoError(t, err)
	bs.AddPolicy(p)
	return item
}

func TestRefresher_Refresh(t *testing.T) {
	r := newRefresher(t)

	t.Run("stale value is replaced", func(t *testing.T) {
		item := newItem(t, "embargo")
		item.SetMetadata(field, "openaccess")

		update := r.Refresh(item, now)
		assert.Equal(t, Update{ItemID: "item-1", Action: ActionSet, Value: vo.StatusEmbargo}, update)

		r.Apply(item, update)
		value, ok := item.MetadataValue(field)
		assert.True(t, ok)
		assert.Equal(t, "embargo", value)
		assert.Equal(t, ActionNone, r.Refresh(item, now).Action)
	})

	t.Run("missing value is set", func(t *testing.T) {
		item := newItem(t, "openaccess")

		update := r.Refresh(item, now)
		assert.Equal(t, ActionSet, update.Action)
		assert.Equal(t, vo.StatusOpenAccess, update.Value)
	})

	t.Run("up to date", func(t *testing.T) {
		item := newItem(t, "openaccess")
		item.SetMetadata(field, "openaccess")

		assert.Equal(t, Update{ItemID: "item-1", Action: ActionNone}, r.Refresh(item, now))
	})

	t.Run("unknown clears", func(t *testing.T) {
		update := r.Refresh(nil, now)
		assert.Equal(t, ActionClear, update.Action)
		r.Apply(nil, update)
	})
}

func TestRefresher_LapsedEmbargo(t *testing.T) {
	r := newRefresher(t)

	item, err := access.NewItem("item-1", "col-1", vo.StageArchived)
	require.NoError(t, err)
	bundle, err := item.AddBundle("ORIGINAL")
	require.NoError(t, err)
	bs, err := bundle.AddBitstream("bs-1", "thesis.pdf")
	require.NoError(t, err)

	upper := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	p, err := access.NewResourcePolicy("embargo", vo.KindCustom, vo.ActionRead, &upper, nil)
	require.NoError(t, err)
	bs.AddPolicy(p)

	update := r.Refresh(item, now)
	require.Equal(t, Update{ItemID: "item-1", Action: ActionSet, Value: vo.StatusEmbargo}, update)
	r.Apply(item, update)

	// the stored embargo must not keep the item embargoed
	later := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	update = r.Refresh(item, later)
	assert.Equal(t, Update{ItemID: "item-1", Action: ActionSet, Value: vo.StatusOpenAccess}, update)

	r.Apply(item, update)
	value, _ := item.MetadataValue(field)
	assert.Equal(t, "openaccess", value)
}

func TestRefresher_ApplyClear(t *testing.T) {
	r := newRefresher(t)
	item := newItem(t, "embargo")
	item.SetMetadata(field, "restricted")

	r.Apply(item, Update{ItemID: item.ID(), Action: ActionClear})

	_, ok := item.MetadataValue(field)
	assert.False(t, ok)
	assert.Equal(t, field, r.MetadataField())
}
