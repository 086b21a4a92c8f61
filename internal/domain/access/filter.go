package access

import (
	"time"

	vo "repoaccess/internal/domain/access/valueobjects"
)

// FilterValid keeps the policies granting action, of the given kind, whose
// validity window contains now. Input order is preserved.
func FilterValid(policies []*ResourcePolicy, action vo.Action, kind vo.PolicyKind, now time.Time) []*ResourcePolicy {
	valid := make([]*ResourcePolicy, 0, len(policies))
	for _, p := range policies {
		if p == nil {
			continue
		}
		if p.Action() != action || p.Kind() != kind {
			continue
		}
		if !p.IsValidAt(now) {
			continue
		}
		valid = append(valid, p)
	}
	return valid
}

// FilterReadable is FilterValid for READ custom policies, the only ones
// taking part in access status resolution.
func FilterReadable(policies []*ResourcePolicy, now time.Time) []*ResourcePolicy {
	return FilterValid(policies, vo.ActionRead, vo.KindCustom, now)
}
