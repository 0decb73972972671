// internal/component/player.go
package component

// AnimState — локальная машина состояний анимации игрока.
type AnimState int

const (
	AnimFlying AnimState = iota
	AnimFiring
)

func (s AnimState) String() string {
	if s == AnimFiring {
		return "Firing"
	}
	return "Flying"
}

// Player хранит информацию, специфичную для игрока.
type Player struct {
	Speed        float64   // Скорость при нажатой клавише
	Drag         float64   // Торможение, пиксели в секунду за секунду
	FireCooldown float64   // Оставшееся время до следующего выстрела
	Anim         AnimState // Flying → Firing → Flying
	AnimTimer    float64   // Сколько ещё длится анимация выстрела
}

// Controls — снимок ввода за кадр. Опрос клавиатуры живёт вне ядра.
type Controls struct {
	Left, Right, Up, Down bool
	Fire                  bool
}
