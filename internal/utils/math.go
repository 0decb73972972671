// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach сдвигает v к нулю не больше чем на step, не перескакивая ноль.
func Approach(v, step float64) float64 {
	switch {
	case v > step:
		return v - step
	case v < -step:
		return v + step
	default:
		return 0
	}
}
