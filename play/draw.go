package play

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/tcarls/brickbreaker/level"
)

func (s *Session) Draw(screen *ebiten.Image) {
	screen.Fill(s.lvl.BackgroundColor.RGBA())

	for _, bb := range s.bricks {
		if bb.dead {
			continue
		}
		w := s.lvl.BrickWidth
		if bb.brick.HalfSize {
			w /= 2
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w, s.lvl.BrickHeight)
		op.GeoM.Translate(bb.brick.X, bb.brick.Y)
		op.ColorScale.ScaleWithColor(bb.brick.DisplayColor().RGBA())
		screen.DrawImage(s.whiteImg, op)
	}

	pp := s.paddle.Position()
	pop := &ebiten.DrawImageOptions{}
	pop.GeoM.Scale(paddleWidth, paddleHeight)
	pop.GeoM.Translate(pp.X-paddleWidth/2, pp.Y-paddleHeight/2)
	pop.ColorScale.ScaleWithColor(color.RGBA{R: 0xe0, G: 0xe0, B: 0xe8, A: 0xff})
	screen.DrawImage(s.whiteImg, pop)

	bp := s.ball.Position()
	bop := &ebiten.DrawImageOptions{}
	bop.GeoM.Translate(bp.X-ballRadius, bp.Y-ballRadius)
	screen.DrawImage(s.ballImg, bop)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("playtest: %s   bricks left: %d   Esc: back to editor", s.lvl.Name, s.Remaining()))
}

// circleImage builds an RGBA image with a filled circle of the given color.
func circleImage(size int, c level.RGB) *ebiten.Image {
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	cx := float64(size) / 2
	cy := float64(size) / 2
	r := float64(size) / 2
	rr := r * r
	col := c.RGBA()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= rr {
				rgba.Set(x, y, col)
			} else {
				rgba.Set(x, y, color.RGBA{})
			}
		}
	}
	return ebiten.NewImageFromImage(rgba)
}
