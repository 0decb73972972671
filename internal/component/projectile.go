// internal/component/projectile.go
package component

import "go-side-shooter/internal/types"

// Projectile связывает снаряд с его местом в пуле.
type Projectile struct {
	Pool types.EntityID // Пул, выдавший снаряд
	Slot int            // Индекс в этом пуле
}
