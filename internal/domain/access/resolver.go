package access

import (
	"math"

	vo "repoaccess/internal/domain/access/valueobjects"
)

// ResolveMaster returns the policy with the highest configured weight.
// The comparison is strictly greater-than against a running maximum that
// starts at math.MinInt, so on ties the earliest policy in input order wins
// and a policy weighing math.MinInt is never chosen. Returns nil for an
// empty list.
func ResolveMaster(policies []*ResourcePolicy, table *vo.PriorityTable) *ResourcePolicy {
	var master *ResourcePolicy
	maxWeight := math.MinInt
	for _, p := range policies {
		if p == nil {
			continue
		}
		if w := table.Weight(p.Name()); w > maxWeight {
			maxWeight = w
			master = p
		}
	}
	return master
}
