package domain

// StatDefaults are the baseline stats handed to every spawned person.
type StatDefaults struct {
	AP           int     `mapstructure:"ap" json:"ap"`
	KickStrength float64 `mapstructure:"kickStrength" json:"kickStrength"`
	PassingSkill float64 `mapstructure:"passingSkill" json:"passingSkill"`
	Wit          float64 `mapstructure:"wit" json:"wit"`
	Defense      float64 `mapstructure:"defense" json:"defense"`
}

// DefaultStats mirrors the stock lineup.
func DefaultStats() StatDefaults {
	return StatDefaults{
		AP:           10,
		KickStrength: 15,
		PassingSkill: 50,
		Wit:          0.5,
		Defense:      0.5,
	}
}

// NewStats builds a stats component; initiative orders turns within a team.
func NewStats(d StatDefaults, initiative int) *StatsComponent {
	return &StatsComponent{
		AP:           d.AP,
		MaxAP:        d.AP,
		KickStrength: d.KickStrength,
		PassingSkill: d.PassingSkill,
		Wit:          d.Wit,
		Defense:      d.Defense,
		Initiative:   initiative,
	}
}

// HasAP is true while the person may still step.
func (s *StatsComponent) HasAP() bool {
	return s.AP > 0
}

// SpendAP removes one point; it reports false when nothing was left.
func (s *StatsComponent) SpendAP() bool {
	if s.AP <= 0 {
		return false
	}
	s.AP--
	return true
}

// ResetAP restores AP to the initial value.
func (s *StatsComponent) ResetAP() {
	s.AP = s.MaxAP
}
