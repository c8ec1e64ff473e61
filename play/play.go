// Package play runs a level inside a minimal breakout scene so the editor's
// test mode plays the document being edited. It owns a chipmunk space with
// the bricks as static bodies, one ball, and a mouse-driven paddle, and
// signals the host when the author returns to the editor.
package play

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/tcarls/brickbreaker/level"
)

const (
	collisionTypeBall cp.CollisionType = iota + 1
	collisionTypeBrick
	collisionTypePaddle
	collisionTypeWall
)

const (
	playAreaBelow = 320 // pixel space under the brick field for the paddle
	ballSpeed     = 420.0
	paddleWidth   = 120.0
	paddleHeight  = 16.0
	ballRadius    = 8.0
	boostFactor   = 1.3
	maxBallSpeed  = 900.0
)

type brickBody struct {
	brick level.Brick
	body  *cp.Body
	shape *cp.Shape
	hits  int
	dead  bool
}

// Session is one playtest run of a level.
type Session struct {
	lvl    *level.Level
	space  *cp.Space
	ball   *cp.Body
	paddle *cp.Body
	bricks []*brickBody
	onExit func()

	pixelW, pixelH float64
	whiteImg       *ebiten.Image
	ballImg        *ebiten.Image
	exited         bool
}

// New builds a playtest session over a copy of lvl. onExit fires once when
// the author presses Escape; it carries no payload.
func New(lvl *level.Level, onExit func()) *Session {
	lvl = lvl.Clone()
	lvl.Clean()

	s := &Session{
		lvl:    lvl,
		onExit: onExit,
	}
	s.pixelW = float64(lvl.Width)*(lvl.BrickWidth+lvl.Padding) + lvl.Padding
	s.pixelH = float64(lvl.Height)*(lvl.BrickHeight+lvl.Padding) + playAreaBelow

	s.space = cp.NewSpace()
	s.space.Iterations = 10
	s.space.SetGravity(cp.Vector{})

	s.addWalls()
	s.addBricks()
	s.addPaddle()
	s.addBall()
	s.installHandlers()

	s.whiteImg = ebiten.NewImage(1, 1)
	s.whiteImg.Fill(level.RGB{R: 0xff, G: 0xff, B: 0xff}.RGBA())
	s.ballImg = circleImage(int(ballRadius*2), level.RGB{R: 0xf0, G: 0xf0, B: 0xf0})

	return s
}

// Bounds returns the scene's logical pixel size.
func (s *Session) Bounds() (float64, float64) {
	return s.pixelW, s.pixelH
}

func (s *Session) addWalls() {
	static := s.space.StaticBody
	corners := []cp.Vector{
		{X: 0, Y: 0},
		{X: s.pixelW, Y: 0},
		{X: s.pixelW, Y: s.pixelH},
		{X: 0, Y: s.pixelH},
	}
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		seg := s.space.AddShape(cp.NewSegment(static, a, b, 1))
		seg.SetElasticity(1)
		seg.SetFriction(0)
		seg.SetCollisionType(collisionTypeWall)
	}
}

func (s *Session) addBricks() {
	for i := range s.lvl.Bricks {
		b := s.lvl.Bricks[i]
		w := s.lvl.BrickWidth
		if b.HalfSize {
			w /= 2
		}
		h := s.lvl.BrickHeight

		body := s.space.AddBody(cp.NewStaticBody())
		body.SetPosition(cp.Vector{X: b.X + w/2, Y: b.Y + h/2})
		shape := s.space.AddShape(cp.NewBox(body, w, h, 0))
		shape.SetElasticity(1)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeBrick)

		bb := &brickBody{brick: b, body: body, shape: shape}
		shape.UserData = bb
		s.bricks = append(s.bricks, bb)
	}
}

func (s *Session) addPaddle() {
	body := s.space.AddBody(cp.NewKinematicBody())
	body.SetPosition(cp.Vector{X: s.pixelW / 2, Y: s.pixelH - 40})
	shape := s.space.AddShape(cp.NewBox(body, paddleWidth, paddleHeight, 2))
	shape.SetElasticity(1)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypePaddle)
	s.paddle = body
}

func (s *Session) addBall() {
	moment := cp.MomentForCircle(1, 0, ballRadius, cp.Vector{})
	body := s.space.AddBody(cp.NewBody(1, moment))
	body.SetPosition(cp.Vector{X: s.pixelW / 2, Y: s.pixelH - 80})
	body.SetVelocity(ballSpeed*0.4, -ballSpeed)
	shape := s.space.AddShape(cp.NewCircle(body, ballRadius, cp.Vector{}))
	shape.SetElasticity(1)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeBall)
	s.ball = body
}

func (s *Session) installHandlers() {
	handler := s.space.NewCollisionHandler(collisionTypeBall, collisionTypeBrick)
	handler.PostSolveFunc = func(arb *cp.Arbiter, space *cp.Space, _ interface{}) {
		_, brickShape := arb.Shapes()
		bb, ok := brickShape.UserData.(*brickBody)
		if !ok || bb.dead {
			return
		}
		s.hitBrick(bb, space)
	}
}

func (s *Session) hitBrick(bb *brickBody, space *cp.Space) {
	switch bb.brick.Type {
	case level.TypeUnbreakable:
		return
	case level.TypeMetal:
		bb.hits++
		if bb.hits < 2 {
			return
		}
	case level.TypeBoost:
		v := s.ball.Velocity().Mult(boostFactor)
		s.ball.SetVelocityVector(v)
	case level.TypePortal:
		s.teleportBall(bb)
		return
	case level.TypeTNT:
		for _, other := range s.bricks {
			if other == bb || other.dead {
				continue
			}
			if abs(other.brick.Col-bb.brick.Col) <= 1 && abs(other.brick.Row-bb.brick.Row) <= 1 &&
				other.brick.Type != level.TypeUnbreakable {
				s.removeBrick(other, space)
			}
		}
	}
	s.removeBrick(bb, space)
}

func (s *Session) removeBrick(bb *brickBody, space *cp.Space) {
	if bb.dead {
		return
	}
	bb.dead = true
	space.AddPostStepCallback(func(sp *cp.Space, _, _ interface{}) {
		sp.RemoveShape(bb.shape)
		sp.RemoveBody(bb.body)
	}, bb, nil)
}

// teleportBall moves the ball to the exit side of the portal's partner,
// keeping its velocity.
func (s *Session) teleportBall(bb *brickBody) {
	for _, other := range s.bricks {
		if other == bb || other.dead {
			continue
		}
		if other.brick.Type == level.TypePortal && other.brick.ID == bb.brick.ID {
			pos := other.body.Position()
			v := s.ball.Velocity()
			offset := s.lvl.BrickHeight/2 + ballRadius + 2
			if v.Y < 0 {
				offset = -offset
			}
			s.ball.SetPosition(cp.Vector{X: pos.X, Y: pos.Y + offset})
			return
		}
	}
}

// Update advances one frame. Returns false once the session has exited.
func (s *Session) Update() bool {
	if s.exited {
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.exited = true
		if s.onExit != nil {
			s.onExit()
		}
		return false
	}

	mx, _ := ebiten.CursorPosition()
	px := clampF(float64(mx), paddleWidth/2, s.pixelW-paddleWidth/2)
	s.paddle.SetPosition(cp.Vector{X: px, Y: s.pixelH - 40})

	s.space.Step(1.0 / 60.0)
	s.clampBall()
	return true
}

// clampBall keeps the ball speed in a playable band and respawns it when it
// escapes past the paddle.
func (s *Session) clampBall() {
	v := s.ball.Velocity()
	speed := math.Hypot(v.X, v.Y)
	if speed > 0 {
		target := clampF(speed, ballSpeed*0.6, maxBallSpeed)
		if target != speed {
			s.ball.SetVelocityVector(v.Mult(target / speed))
		}
	}
	if s.ball.Position().Y > s.pixelH+60 {
		s.ball.SetPosition(cp.Vector{X: s.pixelW / 2, Y: s.pixelH - 80})
		s.ball.SetVelocity(ballSpeed*0.4, -ballSpeed)
	}
}

// Remaining counts breakable bricks still standing.
func (s *Session) Remaining() int {
	n := 0
	for _, bb := range s.bricks {
		if !bb.dead && bb.brick.Type != level.TypeUnbreakable {
			n++
		}
	}
	return n
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
