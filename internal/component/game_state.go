package component

// SpawnState — шанс появления врага за кадр и число прошедших волн.
// Chance только растёт и сверху не ограничивается.
type SpawnState struct {
	Chance float64
	Waves  int
}
