// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в мире.
// Значение 0 зарезервировано как "нет сущности".
type EntityID uint64
