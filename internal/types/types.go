// internal/types/types.go
package types

// EntityID identifies an entity in the world. Zero means "no entity".
type EntityID uint32
