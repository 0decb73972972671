// internal/utils/tween.go
package utils

// Tween плавно ведёт значение к цели за фиксированное время.
type Tween struct {
	Duration float64
	from     float64
	to       float64
	elapsed  float64
}

func NewTween(value, duration float64) *Tween {
	return &Tween{Duration: duration, from: value, to: value, elapsed: duration}
}

// Set начинает новый переход от текущего значения к target.
func (t *Tween) Set(target float64) {
	t.from = t.Value()
	t.to = target
	t.elapsed = 0
}

func (t *Tween) Update(deltaTime float64) {
	t.elapsed += deltaTime
}

// Value возвращает текущее значение.
func (t *Tween) Value() float64 {
	if t.Duration <= 0 || t.elapsed >= t.Duration {
		return t.to
	}
	return Lerp(t.from, t.to, t.elapsed/t.Duration)
}

// Target возвращает конечное значение перехода.
func (t *Tween) Target() float64 {
	return t.to
}

func (t *Tween) Done() bool {
	return t.elapsed >= t.Duration
}
