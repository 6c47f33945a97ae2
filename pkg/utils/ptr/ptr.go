// Package ptr contains pointer helpers for optional JSON fields.
package ptr

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}
