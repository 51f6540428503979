// internal/types/types.go
package types

// EntityID identifies a single entity inside the ECS. ID 0 is never assigned
// and doubles as the "no entity" sentinel for weak references (for example a
// projectile whose homing target has already been destroyed).
type EntityID uint64
