package render

import "fmt"

// Canvas size of the generated card.
const (
	CanvasWidth  = 850
	CanvasHeight = 880
)

// Region is a named rectangular area of the canvas assigned to one fragment.
type Region struct {
	X, Y, W, H int
}

// Layout partitions the canvas into the card's panel regions.
// Regions stack top to bottom; whoever resizes a region is responsible
// for shifting the regions below it.
type Layout struct {
	HUD        Region
	Equipment  Region
	DungeonMap Region
	Items      Region
	QuestLog   Region
	Party      Region
	Footer     Region
}

// DefaultLayout is the card layout: HUD strip, equipment and dungeon map
// side by side, then full-width items, quest log, party and footer.
var DefaultLayout = Layout{
	HUD:        Region{X: 14, Y: 14, W: 822, H: 40},
	Equipment:  Region{X: 18, Y: 64, W: 270, H: 300},
	DungeonMap: Region{X: 300, Y: 64, W: 532, H: 300},
	Items:      Region{X: 18, Y: 376, W: 814, H: 130},
	QuestLog:   Region{X: 18, Y: 518, W: 814, H: 200},
	Party:      Region{X: 18, Y: 730, W: 814, H: 80},
	Footer:     Region{X: 14, Y: 830, W: 822, H: 44},
}

type namedRegion struct {
	name   string
	region Region
}

func (l Layout) regions() []namedRegion {
	return []namedRegion{
		{"hud", l.HUD},
		{"equipment", l.Equipment},
		{"dungeon map", l.DungeonMap},
		{"items", l.Items},
		{"quest log", l.QuestLog},
		{"party", l.Party},
		{"footer", l.Footer},
	}
}

// Validate checks that every region fits the canvas and that no two
// regions overlap.
func (l Layout) Validate() error {
	regions := l.regions()
	for _, nr := range regions {
		r := nr.region
		if r.W <= 0 || r.H <= 0 {
			return fmt.Errorf("region %s has non-positive size", nr.name)
		}
		if r.X < 0 || r.Y < 0 || r.X+r.W > CanvasWidth || r.Y+r.H > CanvasHeight {
			return fmt.Errorf("region %s exceeds canvas bounds", nr.name)
		}
	}

	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			if overlaps(regions[i].region, regions[j].region) {
				return fmt.Errorf("regions %s and %s overlap", regions[i].name, regions[j].name)
			}
		}
	}

	return nil
}

func overlaps(a, b Region) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
