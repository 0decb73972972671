package component

// Health — модель здоровья. Меняется только через Damage.
type Health struct {
	Current int
	Max     int
}

// NewHealth создаёт полное здоровье.
func NewHealth(max int) *Health {
	return &Health{Current: max, Max: max}
}

// Damage вычитает урон. Ограничение снизу не выполняется:
// это ответственность вызывающего кода.
func (h *Health) Damage(amount int) {
	h.Current -= amount
}

// Fraction возвращает Current/Max.
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// IsDepleted сообщает, что здоровье закончилось.
func (h *Health) IsDepleted() bool {
	return h.Current <= 0
}
