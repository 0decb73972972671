// internal/types/types.go
package types

// EntityID — идентификатор сущности. Ноль никогда не выдаётся.
type EntityID uint64
