package field

import (
	"fmt"
	"strings"

	"rogue-soccer/internal/domain"
)

// Standard parses the stock pitch.
func Standard() *domain.Field {
	f, err := Parse(standardLayout)
	if err != nil {
		// the layout is a compile-time constant
		panic(fmt.Sprintf("field: stock layout: %v", err))
	}
	return f
}

// Parse turns an ASCII layout into a field. Every row must have the same
// width. The layout is centred on the origin: column c, row r maps to tile
// (c - width/2, height/2 - r), so the top row has the largest Y.
func Parse(layout string) (*domain.Field, error) {
	rows := strings.Split(strings.Trim(layout, "\n"), "\n")
	if len(rows) == 0 || rows[0] == "" {
		return nil, fmt.Errorf("field: empty layout")
	}

	width, height := len(rows[0]), len(rows)
	halfW, halfH := width/2, height/2

	f := domain.NewField(
		domain.Tile{X: -halfW, Y: halfH - (height - 1)},
		domain.Tile{X: width - 1 - halfW, Y: halfH},
	)

	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("field: row %d has width %d, want %d", r, len(row), width)
		}
		for c, ch := range row {
			t := domain.Tile{X: c - halfW, Y: halfH - r}
			switch ch {
			case '#':
				f.Set(t, domain.Wall)
			case '|':
				f.Set(t, domain.Goal(domain.TeamPlayer))
			case 'x':
				f.Set(t, domain.Goal(domain.TeamEnemy))
			case '.', ' ':
			default:
				return nil, fmt.Errorf("field: unknown tile %q at row %d col %d", ch, r, c)
			}
		}
	}
	return f, nil
}
