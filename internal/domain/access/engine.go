// Package access decides the effective access condition of repository
// objects from their resource policies.
//
// Every function here is pure: callers hand in the policies, the metadata
// and the instant "now", and receive plain values back. Nothing is cached,
// logged or persisted, so an Engine is safe for concurrent use. Callers
// should use a single "now" per logical operation so that status and
// embargo date agree.
//
// Objects without any restriction signal are reported as open access.
// This fail-open default is intentional.
package access

import (
	"errors"
	"time"

	vo "repoaccess/internal/domain/access/valueobjects"
)

var (
	ErrMissingPriorityTable = errors.New("priority table is required")
	ErrMissingMetadataField = errors.New("access metadata field is required")
	ErrMissingCanonical     = errors.New("canonical bundle name is required")
)

// EngineConfig is injected once at construction; the engine never reads
// ambient configuration.
type EngineConfig struct {
	Priorities      *vo.PriorityTable
	MetadataField   string
	CanonicalBundle string
	AcceptedBundles []string
	ControlledTypes []string
}

type Engine struct {
	priorities      *vo.PriorityTable
	metadataField   string
	canonicalBundle string
	acceptedBundles []string
	controlledTypes []string
}

func NewEngine(cfg EngineConfig) (*Engine, error) {
	if cfg.Priorities == nil {
		return nil, ErrMissingPriorityTable
	}
	if cfg.MetadataField == "" {
		return nil, ErrMissingMetadataField
	}
	if cfg.CanonicalBundle == "" {
		return nil, ErrMissingCanonical
	}

	accepted := cfg.AcceptedBundles
	if len(accepted) == 0 {
		accepted = []string{cfg.CanonicalBundle}
	}

	return &Engine{
		priorities:      cfg.Priorities,
		metadataField:   cfg.MetadataField,
		canonicalBundle: cfg.CanonicalBundle,
		acceptedBundles: append([]string(nil), accepted...),
		controlledTypes: append([]string(nil), cfg.ControlledTypes...),
	}, nil
}

func (e *Engine) MetadataField() string {
	return e.metadataField
}

// MasterPolicy returns the master READ custom policy of the target's master
// file valid at now, or nil when there is no master file or no valid policy.
func (e *Engine) MasterPolicy(target Target, now time.Time) *ResourcePolicy {
	if isNilTarget(target) {
		return nil
	}
	file := target.MasterFile(e.canonicalBundle)
	if file == nil {
		return nil
	}
	return ResolveMaster(FilterReadable(file.Policies(), now), e.priorities)
}

// StatusForObject returns the access status of an item or bitstream.
//
// A nil target is unknown. Otherwise the master policy of the master file
// decides when it has a name; failing that the configured metadata field
// of the master file is classified, or of the target itself when it has
// no master file. Without either the target is open access.
func (e *Engine) StatusForObject(target Target, now time.Time) vo.AccessStatus {
	if isNilTarget(target) {
		return vo.StatusUnknown
	}

	var source Target = target
	if file := target.MasterFile(e.canonicalBundle); file != nil {
		master := ResolveMaster(FilterReadable(file.Policies(), now), e.priorities)
		if master != nil && master.Name() != "" {
			return vo.Classify(master.Name())
		}
		source = file
	}

	if value, ok := source.MetadataValue(e.metadataField); ok {
		return vo.Classify(value)
	}
	return vo.StatusOpenAccess
}

// EmbargoDate returns the embargo instant of an embargoed target: the
// master policy's end date, i.e. its LOWER validity bound under the
// inverted naming. It is nil when the target is not embargoed by a policy.
// Use the master policy's UpperBound for the date access opens.
func (e *Engine) EmbargoDate(target Target, now time.Time) *time.Time {
	if e.StatusForObject(target, now) != vo.StatusEmbargo {
		return nil
	}
	master := e.MasterPolicy(target, now)
	if master == nil || vo.Classify(master.Name()) != vo.StatusEmbargo {
		return nil
	}
	return master.EndDate()
}

// AccessTypes lists the controlled access labels of the item's files held
// in accepted bundles.
func (e *Engine) AccessTypes(item *Item) []string {
	return ExtractAccessTypes(item, e.acceptedBundles, e.controlledTypes)
}

// GlobalStatusForItem aggregates the access labels of all accepted files.
func (e *Engine) GlobalStatusForItem(item *Item) (vo.AccessStatus, bool) {
	return GlobalStatus(e.AccessTypes(item))
}
