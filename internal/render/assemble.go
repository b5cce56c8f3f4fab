package render

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/bigmacfive/questcard/internal/app"
)

// Assemble renders the full card for the given layout. Fragments are
// joined in a fixed order and the sparkle generator is reseeded per call,
// so identical profiles produce identical bytes.
func Assemble(layout Layout, p app.Profile) (string, error) {
	if err := layout.Validate(); err != nil {
		return "", fmt.Errorf("validating layout: %w", err)
	}

	rng := rand.New(rand.NewSource(sparkleSeed))

	sections := []string{
		fmt.Sprintf(
			`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
			CanvasWidth, CanvasHeight, CanvasWidth, CanvasHeight,
		),
		renderDefs(),
		renderOuterBorder(),
		renderSparkles(rng),
		renderHUD(layout.HUD, p.Stats),
		renderEquipment(layout.Equipment, p.Stats),
		renderDungeonMap(layout.DungeonMap, p.Stats.Weeks),
		renderItems(layout.Items, p.Stats.Languages),
		renderQuestLog(layout.QuestLog, p.Events, p.Stats.FetchedAt),
		renderParty(layout.Party, p.Collab),
		renderFooter(layout.Footer, p.Stats.FetchedAt),
		renderScanlines(),
		"</svg>",
	}
	return strings.Join(sections, "\n"), nil
}

// Card renders the profile with the default layout.
func Card(p app.Profile) (string, error) {
	return Assemble(DefaultLayout, p)
}
