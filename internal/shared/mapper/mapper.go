// Package mapper converts between configuration, fixture and domain shapes.
package mapper

// MapSlice converts every element with fn. A nil input stays nil so that
// "not configured" and "configured empty" remain distinguishable.
func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	if items == nil {
		return nil
	}

	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, fn(item))
	}
	return result
}
