package access

import (
	"fmt"
	"math"
	"time"

	vo "repoaccess/internal/domain/access/valueobjects"
)

var (
	epoch = time.Unix(0, 0).UTC()
	// endOfTime stands in for an absent upper bound.
	endOfTime = time.Unix(math.MaxInt64-62135596801, 999999999).UTC()
)

// ResourcePolicy is a named access rule attached to one item or bitstream.
//
// The date fields keep the repository's inverted naming: startDate is the
// instant after which the restriction has lapsed, so it is the UPPER bound
// of the validity window, and endDate is the LOWER bound. Embargo dates
// exposed to users depend on this, do not swap them.
type ResourcePolicy struct {
	id          int
	name        string
	description string
	kind        vo.PolicyKind
	action      vo.Action
	startDate   *time.Time
	endDate     *time.Time
	principal   string
	targetID    string
}

func NewResourcePolicy(name string, kind vo.PolicyKind, action vo.Action, startDate, endDate *time.Time) (*ResourcePolicy, error) {
	if _, err := vo.NewAction(action.String()); err != nil {
		return nil, err
	}
	if _, err := vo.NewPolicyKind(kind.String()); err != nil {
		return nil, err
	}

	return &ResourcePolicy{
		name:      name,
		kind:      kind,
		action:    action,
		startDate: copyTime(startDate),
		endDate:   copyTime(endDate),
	}, nil
}

func ReconstructResourcePolicy(
	id int,
	name string,
	description string,
	kind vo.PolicyKind,
	action vo.Action,
	startDate *time.Time,
	endDate *time.Time,
	principal string,
	targetID string,
) (*ResourcePolicy, error) {
	if id <= 0 {
		return nil, fmt.Errorf("resource policy ID must be positive")
	}

	p, err := NewResourcePolicy(name, kind, action, startDate, endDate)
	if err != nil {
		return nil, err
	}
	p.id = id
	p.description = description
	p.principal = principal
	p.targetID = targetID
	return p, nil
}

func (p *ResourcePolicy) ID() int {
	return p.id
}

func (p *ResourcePolicy) Name() string {
	return p.name
}

func (p *ResourcePolicy) Description() string {
	return p.description
}

func (p *ResourcePolicy) Kind() vo.PolicyKind {
	return p.kind
}

func (p *ResourcePolicy) Action() vo.Action {
	return p.action
}

// StartDate is the stored start date, the upper validity bound.
func (p *ResourcePolicy) StartDate() *time.Time {
	return copyTime(p.startDate)
}

// EndDate is the stored end date, the lower validity bound.
func (p *ResourcePolicy) EndDate() *time.Time {
	return copyTime(p.endDate)
}

func (p *ResourcePolicy) Principal() string {
	return p.principal
}

func (p *ResourcePolicy) TargetID() string {
	return p.targetID
}

// LowerBound is the end date, or the Unix epoch when absent.
func (p *ResourcePolicy) LowerBound() time.Time {
	if p.endDate == nil {
		return epoch
	}
	return *p.endDate
}

// UpperBound is the start date, or the end of representable time when absent.
func (p *ResourcePolicy) UpperBound() time.Time {
	if p.startDate == nil {
		return endOfTime
	}
	return *p.startDate
}

// IsValidAt reports LowerBound <= now <= UpperBound, both ends inclusive.
func (p *ResourcePolicy) IsValidAt(now time.Time) bool {
	return !now.Before(p.LowerBound()) && !now.After(p.UpperBound())
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
