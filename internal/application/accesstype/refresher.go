// Package accesstype keeps the access-type metadata of items in line with
// their resource policies.
package accesstype

import (
	"time"

	"repoaccess/internal/domain/access"
	vo "repoaccess/internal/domain/access/valueobjects"
	"repoaccess/internal/shared/logger"
)

type Action string

const (
	ActionNone  Action = "none"
	ActionSet   Action = "set"
	ActionClear Action = "clear"
)

// Update is the metadata change a refresh asks for. Value is only set
// for ActionSet.
type Update struct {
	ItemID string
	Action Action
	Value  vo.AccessStatus
}

type Refresher struct {
	engine *access.Engine
	logger logger.Interface
}

func NewRefresher(engine *access.Engine, logger logger.Interface) *Refresher {
	return &Refresher{
		engine: engine,
		logger: logger,
	}
}

// MetadataField is the field the refresher maintains.
func (r *Refresher) MetadataField() string {
	return r.engine.MetadataField()
}

// Refresh compares the computed status of item with its stored value. A
// nil item has no determinable status and asks for the field to be cleared.
func (r *Refresher) Refresh(item *access.Item, now time.Time) Update {
	if item == nil {
		return Update{Action: ActionClear}
	}

	status := r.engine.StatusForObject(item, now)
	current, _ := item.MetadataValue(r.engine.MetadataField())
	if status.String() == current {
		return Update{ItemID: item.ID(), Action: ActionNone}
	}

	r.logger.Debugw("access type changed",
		"item_id", item.ID(),
		"from", current,
		"to", status.String())
	return Update{ItemID: item.ID(), Action: ActionSet, Value: status}
}

// Apply writes update back into the item's metadata.
func (r *Refresher) Apply(item *access.Item, update Update) {
	if item == nil {
		return
	}
	switch update.Action {
	case ActionSet:
		item.SetMetadata(r.engine.MetadataField(), update.Value.String())
	case ActionClear:
		item.SetMetadata(r.engine.MetadataField())
	}
}
