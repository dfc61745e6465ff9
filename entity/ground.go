package entity

import "github.com/pthm-cable/barrage/components"

type groundMove uint8

const (
	moveDown groundMove = iota
	moveUp
	moveLeft
	moveRight
	moveIdle
)

const (
	groundEnergy = 5
	groundScore  = 5
	groundForce  = 10 // ticks an edge override lasts
)

// groundEnemy patrols the upper half of the arena and fires missile pairs.
type groundEnemy struct {
	move      groundMove
	dist      int
	fireTimer int
}

// NewGroundEnemy creates a patrolling enemy near the top of the arena and
// counts it in the enemy population.
func NewGroundEnemy(r *Registry) *Object {
	x := r.Random(components.ArenaWidth/2-60) + 30
	g := &groundEnemy{
		move:      groundMove(r.Random(4)),
		dist:      r.Random(50),
		fireTimer: r.Random(100) + 20,
	}
	r.State.EnemyPopulation++
	return newShip(components.VariantGroundEnemy, groundEnergy,
		components.Body{X: x, Y: 30, W: 20, H: 20}, g)
}

func (g *groundEnemy) Update(o *Object, r *Registry) {
	switch g.move {
	case moveDown:
		o.Y++
	case moveUp:
		o.Y--
	case moveLeft:
		o.X--
	case moveRight:
		o.X++
	}

	if g.dist >= 0 {
		g.dist--
	} else {
		g.dist = r.Random(50)
		g.move = groundMove(r.Random(5))
	}

	switch {
	case o.Y-20 < 20:
		g.force(moveDown)
	case o.Y > components.ArenaHeight/2:
		g.force(moveUp)
	}
	switch {
	case o.X-20 < 0:
		g.force(moveRight)
	case o.X+20 > components.ArenaWidth:
		g.force(moveLeft)
	}

	if g.fireTimer == 0 {
		g.fireTimer = r.Random(180) + 20
		o.Spawn(NewStraightMissile(o.X-9, o.Y+20, 0, 3))
		o.Spawn(NewStraightMissile(o.X+9, o.Y+20, 0, 3))
	} else {
		g.fireTimer--
	}
}

func (g *groundEnemy) force(m groundMove) {
	g.move = m
	g.dist = groundForce
}

func (g *groundEnemy) Draw(o *Object, d Drawer) {
	drawSprite(o, d, SpriteGroundEnemy)
}

func (g *groundEnemy) Destroyed(o *Object, r *Registry) {
	r.State.EnemyPopulation--
	r.State.Score += groundScore
}
