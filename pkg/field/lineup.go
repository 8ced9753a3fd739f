package field

import (
	"fmt"
	"math/rand"

	"rogue-soccer/internal/domain"
)

// Position is one entry of a formation, given for the player team which
// defends the left (negative X) goal. The enemy team mirrors it.
type Position struct {
	Tile  domain.Tile
	Class domain.CharacterClass
}

// StandardFormation is the stock 1-4-3-3.
var StandardFormation = []Position{
	{domain.Tile{X: -45, Y: 0}, domain.ClassGoalkeeper},
	{domain.Tile{X: -30, Y: 8}, domain.ClassCentralDefender},
	{domain.Tile{X: -30, Y: -8}, domain.ClassCentralDefender},
	{domain.Tile{X: -30, Y: 24}, domain.ClassCentralDefender},
	{domain.Tile{X: -30, Y: -24}, domain.ClassCentralDefender},
	{domain.Tile{X: -18, Y: 0}, domain.ClassMidfielder},
	{domain.Tile{X: -15, Y: 12}, domain.ClassMidfielder},
	{domain.Tile{X: -15, Y: -12}, domain.ClassMidfielder},
	{domain.Tile{X: -5, Y: 16}, domain.ClassAttacker},
	{domain.Tile{X: -5, Y: -16}, domain.ClassAttacker},
	{domain.Tile{X: -4, Y: 0}, domain.ClassAttacker},
}

// MatchBuilder assembles a world with a fluent API.
type MatchBuilder struct {
	field     *domain.Field
	rng       *rand.Rand
	stats     domain.StatDefaults
	formation []Position
	ball      domain.Tile
}

// NewMatch starts a builder on the given field. rng drives name generation
// and must come from the match seed for reproducible rosters.
func NewMatch(f *domain.Field, rng *rand.Rand) *MatchBuilder {
	return &MatchBuilder{
		field:     f,
		rng:       rng,
		stats:     domain.DefaultStats(),
		formation: StandardFormation,
	}
}

// WithStats overrides the per-person baseline stats.
func (b *MatchBuilder) WithStats(d domain.StatDefaults) *MatchBuilder {
	b.stats = d
	return b
}

// WithFormation overrides the lineup used by both teams.
func (b *MatchBuilder) WithFormation(formation []Position) *MatchBuilder {
	b.formation = formation
	return b
}

// WithBallAt places the ball; the default is the centre spot.
func (b *MatchBuilder) WithBallAt(t domain.Tile) *MatchBuilder {
	b.ball = t
	return b
}

// Build spawns the ball, then the player team, then the enemy team. Within a
// team the formation index becomes the initiative.
func (b *MatchBuilder) Build() (*domain.World, error) {
	if b.field == nil {
		return nil, fmt.Errorf("field: no pitch to build on")
	}
	world := domain.NewWorld(b.field)
	world.Spawn(domain.NewBall(domain.ToWorld(b.ball)))

	for _, team := range []domain.Team{domain.TeamPlayer, domain.TeamEnemy} {
		for i, p := range b.formation {
			tile := p.Tile
			if team == domain.TeamEnemy {
				tile.X = -tile.X
			}
			if !b.field.Contains(tile) {
				return nil, fmt.Errorf("field: %s position %d at %v is off the pitch", team, i, tile)
			}
			if it, ok := b.field.At(tile); ok && it.Impassable() {
				return nil, fmt.Errorf("field: %s position %d at %v is inside %s", team, i, tile, it.Kind)
			}

			person := domain.NewPerson(b.randomName(), team, p.Class, domain.ToWorld(tile), domain.NewStats(b.stats, i))
			world.Spawn(person)
		}
	}
	return world, nil
}

func (b *MatchBuilder) randomName() string {
	first := firstNames[b.rng.Intn(len(firstNames))]
	last := lastNames[b.rng.Intn(len(lastNames))]
	return first + " " + last
}
