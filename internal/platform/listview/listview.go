// Package listview arma vistas derivadas (filtro, orden, tope) sobre una
// colección sin tocar la original.
package listview

import "sort"

// Apply copia los items que pasan filter, los ordena de forma estable con
// less y corta en limit. filter y less pueden ser nil; limit <= 0 es sin tope.
func Apply[T any](items []T, filter func(T) bool, less func(a, b T) bool, limit int) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if filter == nil || filter(it) {
			out = append(out, it)
		}
	}

	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
