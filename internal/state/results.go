// internal/state/results.go
package state

// Results — итоги последней сессии, которые показывает экран gameOver.
type Results struct {
	Score    int
	Waves    int
	GameTime float64
	Best     int
}

// Record сохраняет итоги сессии и обновляет рекорд.
func (r *Results) Record(score, waves int, gameTime float64) {
	r.Score = score
	r.Waves = waves
	r.GameTime = gameTime
	if score > r.Best {
		r.Best = score
	}
}
