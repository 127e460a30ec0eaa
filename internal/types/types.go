// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в симуляции.
// Zero is never issued and means "no entity".
type EntityID uint64
