package engine

import (
	"rogue-soccer/internal/domain"
	"rogue-soccer/pkg/api"
)

// BuildState creates a snapshot of the pitch for clients. The static field
// is included only when withField is set (on join); logs are passed in so
// the caller decides whether they are drained or replayed from history.
func (m *Match) BuildState(withField bool, logs []api.LogEntry) api.ServerResponse {
	resp := api.ServerResponse{
		Type:     "UPDATE",
		Tick:     m.tick,
		State:    m.Turns.State.String(),
		Team:     m.Turns.Team.String(),
		Entities: make([]api.EntityView, 0, len(m.World.Entities)),
		Logs:     logs,
		Actions:  m.CurrentActions(),
	}

	if current := m.World.CurrentPlayer(); current != nil {
		resp.CurrentPlayer = uint32(current.ID)
	}

	for _, e := range m.World.Entities {
		resp.Entities = append(resp.Entities, entityView(e))
	}

	for _, t := range m.PreviewPath() {
		resp.Preview = append(resp.Preview, api.TileView{X: t.X, Y: t.Y})
	}

	if withField && m.World.Field != nil {
		resp.Field = fieldMeta(m.World.Field)
	}
	return resp
}

func entityView(e *domain.Entity) api.EntityView {
	v := api.EntityView{
		ID:        uint32(e.ID),
		Kind:      e.Kind.String(),
		Name:      e.Name,
		X:         e.Pos.X,
		Y:         e.Pos.Y,
		Claimed:   uint32(e.Claimed),
		ClaimedBy: uint32(e.ClaimedBy),
		IsCurrent: e.IsCurrent,
		HasActed:  e.HasActed,
		InFlight:  e.Kicked != nil,
		Walking:   e.Path != nil,
	}
	if e.IsPerson() {
		v.Team = e.Team.String()
		v.Class = e.Class.String()
	}
	if e.Stats != nil {
		v.Stats = &api.StatsView{
			AP:           e.Stats.AP,
			MaxAP:        e.Stats.MaxAP,
			KickStrength: e.Stats.KickStrength,
			PassingSkill: e.Stats.PassingSkill,
			Defense:      e.Stats.Defense,
			Initiative:   e.Stats.Initiative,
		}
	}
	return v
}

func fieldMeta(f *domain.Field) *api.FieldMeta {
	meta := &api.FieldMeta{
		MinX: f.Min.X, MinY: f.Min.Y,
		MaxX: f.Max.X, MaxY: f.Max.Y,
	}
	for _, t := range f.StaticTiles() {
		it, _ := f.At(t)
		tv := api.TileView{X: t.X, Y: t.Y, Kind: it.Kind.String()}
		if it.Kind == domain.KindGoal {
			tv.Team = it.Team.String()
		}
		meta.Tiles = append(meta.Tiles, tv)
	}
	return meta
}
