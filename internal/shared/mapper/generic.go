// Package mapper holds slice helpers shared by repositories and use cases.
package mapper

// MapSlice converts each element with fn. A nil input stays nil.
func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	if items == nil {
		return nil
	}
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// MapRows converts scanned rows by reference, so fn can take the model
// pointer that row mappers expect. The result is never nil.
func MapRows[T any, R any](rows []T, fn func(*T) R) []R {
	out := make([]R, 0, len(rows))
	for i := range rows {
		out = append(out, fn(&rows[i]))
	}
	return out
}
