// Package entity holds the lifecycle result type shared by enemies and
// bullets.
package entity

// Updated is the outcome of one tick of an entity's update: the entity in
// its new state, tagged with whether it survives into the next tick. The
// caller keeps alive values and drops dead ones after reading them.
type Updated[T any] struct {
	value T
	alive bool
}

// Alive wraps v as a surviving entity.
func Alive[T any](v T) Updated[T] {
	return Updated[T]{value: v, alive: true}
}

// Dead wraps v as an entity to be removed. The value stays readable so the
// caller can settle accounts (score, lives) before dropping it.
func Dead[T any](v T) Updated[T] {
	return Updated[T]{value: v}
}

// Alive reports whether the entity survives this tick.
func (u Updated[T]) Alive() bool {
	return u.alive
}

// Value returns the entity in its post-update state.
func (u Updated[T]) Value() T {
	return u.value
}
