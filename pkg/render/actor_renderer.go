// pkg/render/actor_renderer.go
package render

import (
	"go-side-shooter/internal/component"
	"go-side-shooter/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const particleSize = 4

// ActorRenderer рисует живых актёров и вспышки частиц векторными примитивами.
type ActorRenderer struct {
	palette *Palette
}

func NewActorRenderer(palette *Palette) *ActorRenderer {
	return &ActorRenderer{palette: palette}
}

func (r *ActorRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	// Снаряды под кораблями
	for _, f := range []component.Faction{
		component.FactionPlayerProjectile,
		component.FactionEnemyProjectile,
		component.FactionEnemy,
		component.FactionPlayer,
	} {
		for _, a := range ecs.Group(f) {
			rnd, ok := ecs.Renderables[a.ID]
			if !ok {
				continue
			}
			r.drawActor(screen, a, rnd, ecs)
		}
	}

	for _, burst := range ecs.Bursts {
		c := WithAlpha(r.palette.Burst, burst.Alpha())
		for _, p := range burst.Particles {
			vector.DrawFilledRect(screen,
				float32(p.Position.X)-particleSize/2, float32(p.Position.Y)-particleSize/2,
				particleSize, particleSize, c, false)
		}
	}
}

func (r *ActorRenderer) drawActor(screen *ebiten.Image, a *component.Actor, rnd *component.Renderable, ecs *entity.ECS) {
	x, y, radius := float32(a.Position.X), float32(a.Position.Y), float32(a.Radius)
	fill := rnd.Color
	if p, ok := ecs.Players[a.ID]; ok && p.Anim == component.AnimFiring {
		fill = DarkenColor(fill)
	}

	switch rnd.Shape {
	case component.ShapeRect:
		vector.DrawFilledRect(screen, x-radius*2, y-radius/2, radius*4, radius, fill, true)
	default:
		if rnd.HasStroke {
			vector.DrawFilledCircle(screen, x, y, radius+r.palette.StrokeWidth, r.palette.Stroke, true)
		}
		vector.DrawFilledCircle(screen, x, y, radius, fill, true)
	}
}
