package systems

import (
	"math"

	"rogue-soccer/internal/domain"
	"rogue-soccer/pkg/logger"

	"github.com/sirupsen/logrus"
)

const (
	// KickDecay is applied to a kicked entity's velocity once per tick.
	KickDecay = 0.9
	// KickRestSpeed is the speed below which a kicked entity settles.
	KickRestSpeed = 0.1
	// PassVelocityCarry is the share of the passer's own velocity added to a pass.
	PassVelocityCarry = 0.5
)

// Roller produces uniform rolls in [0,1). *rand.Rand satisfies it.
type Roller interface {
	Float64() float64
}

// EntityFinder resolves index occupants to entities.
type EntityFinder interface {
	GetEntity(id domain.EntityID) *domain.Entity
}

// KickVelocity returns the launch velocity for a pass from -> to.
//
// The speed is capped both by the passer's skill and by what is needed to
// cover the tile distance in one step of dt, and half of the passer's own
// velocity is carried over.
func KickVelocity(passingSkill float64, from, to domain.Vec2, dt float64, carried domain.Vec2) domain.Vec2 {
	diff := to.Sub(from)
	direction := diff.NormalizeOrZero()
	tileDistance := diff.Length() / domain.TileSize

	speed := math.Min(passingSkill/dt, tileDistance/dt)
	return direction.Scale(speed).Add(carried.Scale(PassVelocityCarry))
}

// SurfaceNormal estimates the normal of the obstacle next to t by summing the
// opposite of every orthogonal direction that holds a wall or goal mouth.
func SurfaceNormal(t domain.Tile, index *domain.SpatialIndex) domain.Vec2 {
	var n domain.Vec2
	for _, dir := range [4]domain.Tile{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
		if index.IsImpassable(t.Add(dir)) {
			n = n.Sub(domain.Vec2{X: float64(dir.X), Y: float64(dir.Y)})
		}
	}
	return n.NormalizeOrZero()
}

// KickOutcome reports what happened to a kicked entity during one tick.
type KickOutcome struct {
	Moved     bool
	Reflected bool
	BlockedBy *domain.Entity
	// Scored is set when the entity crossed the mouth from the field side.
	// Goal names the team whose goal was hit.
	Scored  bool
	Goal    domain.Team
	Settled bool // the Kicked marker was removed
}

// ResolveKick advances a kicked entity by velocity*dt in unit sub-steps and
// resolves the first collision met on the way.
//
//   - Wall: velocity is reflected about the surface normal.
//   - Person: a roll below the person's defense stops the entity dead.
//   - Goal: crossing a mouth from the field side scores and stops the
//     entity; touching it from behind reflects like a wall.
//
// The entity itself and ignore (usually the kicker) are skipped. After the
// sub-steps the velocity decays by KickDecay and the Kicked marker is
// removed once the speed drops under KickRestSpeed.
func ResolveKick(e *domain.Entity, dt float64, index *domain.SpatialIndex, finder EntityFinder, rng Roller, ignore domain.EntityID) KickOutcome {
	var out KickOutcome
	if e.Kicked == nil {
		return out
	}

	v := e.Kicked.Velocity
	total := v.Scale(dt)
	steps := int(math.Ceil(total.Length()))

	if steps > 0 {
		step := total.Scale(1 / float64(steps))
		pos := e.Pos

	stepping:
		for i := 0; i < steps; i++ {
			next := pos.Add(step)
			current := domain.ToTile(pos)

			for _, occ := range index.Query(domain.ToTile(next)) {
				if occ.ID != domain.NoEntity && (occ.ID == e.ID || occ.ID == ignore) {
					continue
				}

				switch occ.Kind {
				case domain.KindWall:
					v = domain.Reflect(v, SurfaceNormal(current, index))
					out.Reflected = true
					break stepping

				case domain.KindPerson:
					blocker := finder.GetEntity(occ.ID)
					if blocker == nil || blocker.Stats == nil {
						continue
					}
					if rng.Float64() < blocker.Stats.Defense {
						v = domain.Vec2{}
						out.BlockedBy = blocker
						break stepping
					}

				case domain.KindGoal:
					n := SurfaceNormal(current, index)
					// Enemy's mouth is on +X, so the field side normal points -X.
					if (occ.Team == domain.TeamEnemy && n.X < 0) || (occ.Team == domain.TeamPlayer && n.X > 0) {
						v = domain.Vec2{}
						out.Scored = true
						out.Goal = occ.Team
					} else {
						v = domain.Reflect(v, n)
						out.Reflected = true
					}
					break stepping
				}
			}

			pos = next
			out.Moved = true
		}
		e.Pos = pos
	}

	v = v.Scale(KickDecay)
	e.Kicked.Velocity = v
	if v.Length() < KickRestSpeed {
		e.Kicked = nil
		out.Settled = true
	}

	if out.Scored || out.BlockedBy != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "physics_system",
			"entity":    e.ID,
			"scored":    out.Scored,
			"tile":      e.Tile(),
		}).Debug("kick resolved")
	}
	return out
}
