// pkg/render/background.go
package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const stripeSpacing = 64

// Background рисует фон из вертикальных полос, уезжающих влево.
type Background struct {
	width, height float32
	step          float64
	offset        float64
	palette       *Palette
}

func NewBackground(width, height int, step float64, palette *Palette) *Background {
	return &Background{width: float32(width), height: float32(height), step: step, palette: palette}
}

// Update сдвигает фон на один шаг. Шаг задан в пикселях за кадр.
func (b *Background) Update() {
	b.offset = math.Mod(b.offset-b.step, stripeSpacing)
}

func (b *Background) Draw(screen *ebiten.Image) {
	screen.Fill(b.palette.Background)
	for x := float32(b.offset); x < b.width; x += stripeSpacing {
		if x < -1 {
			continue
		}
		vector.StrokeLine(screen, x, 0, x, b.height, 1, b.palette.Stripe, false)
	}
}
