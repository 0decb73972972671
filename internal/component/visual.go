// internal/component/visual.go
package component

// Particle — одна частица взрыва.
type Particle struct {
	Position Position
	Velocity Velocity
}

// Burst — вспышка частиц на месте уничтоженного врага.
type Burst struct {
	Particles  []Particle
	Timer      float64 // Сколько времени эффект уже активен
	Duration   float64 // Общая продолжительность эффекта
	AlphaStart float64
	AlphaEnd   float64
}

// Alpha возвращает текущую прозрачность частиц.
func (b *Burst) Alpha() float64 {
	if b.Duration <= 0 {
		return b.AlphaEnd
	}
	t := b.Timer / b.Duration
	if t > 1 {
		t = 1
	}
	return b.AlphaStart + (b.AlphaEnd-b.AlphaStart)*t
}
