package resolver

// pageArgs resolves optional pagination arguments; services apply their own
// defaults and clamps on zero values.
func pageArgs(limit, offset *int) (int, int) {
	l, o := 0, 0
	if limit != nil {
		l = *limit
	}
	if offset != nil {
		o = *offset
	}
	return l, o
}

// ptrSlice converts a value slice into the pointer slice gqlgen expects for
// object lists.
func ptrSlice[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}
