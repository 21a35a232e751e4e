package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Set reports whether a PATCH body supplied the field.
func Set[T any](ptr *T) bool {
	return ptr != nil
}

func Ptr[T any](v T) *T {
	return &v
}
