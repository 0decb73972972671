package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID           string  // ID из enemies.yaml
	BounceTick      float64 // Текущая фаза синусоиды
	BounceStep      float64 // Прирост фазы за кадр
	BounceAmplitude float64 // Смещение по Y за кадр на пике синусоиды
	WillFire        bool    // Выстрелит ли враг через EnemyFireDelay
}
