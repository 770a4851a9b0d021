// Package mapper provides small generic helpers for slice conversions
// between layers.
package mapper

// MapSlice applies a mapper function to each element of a slice.
// Returns nil if the input slice is nil.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	if items == nil {
		return nil
	}

	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSlicePtr applies a mapper function to each element of a pointer slice,
// skipping nil inputs. Returns nil if the input slice is nil.
func MapSlicePtr[T any, R any](items []*T, mapFunc func(*T) *R) []*R {
	if items == nil {
		return nil
	}

	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item != nil {
			result = append(result, mapFunc(item))
		}
	}
	return result
}

// MapSliceWithError applies a mapper function that may return an error to
// each element. Returns early if any mapping fails.
func MapSliceWithError[T any, R any](items []T, mapFunc func(T) (R, error)) ([]R, error) {
	if items == nil {
		return nil, nil
	}

	result := make([]R, 0, len(items))
	for _, item := range items {
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, err
		}
		result = append(result, mapped)
	}
	return result, nil
}
