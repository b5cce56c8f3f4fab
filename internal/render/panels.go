package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bigmacfive/questcard/internal/app"
)

// renderHUD draws the status strip: streak hearts, centered login title
// and the gem and key counters for stars and repos.
func renderHUD(r Region, s app.ProfileStats) string {
	var parts []string
	hy := r.Y + 6

	hearts := s.CurrentStreak / 7
	if s.CurrentStreak > 0 {
		hearts++
	}
	if hearts < 1 {
		hearts = 1
	}
	if hearts > 5 {
		hearts = 5
	}
	for i := 0; i < 5; i++ {
		parts = append(parts, pixelHeart(r.X+6+i*34, hy, 4, i < hearts))
	}

	parts = append(parts, fmt.Sprintf(
		`<text x="%d" y="%d" text-anchor="middle" font-size="13" fill="%s" letter-spacing="3" filter="url(#glow-gold)">%s</text>`,
		r.X+r.W/2, hy+14, colorTitle, esc(strings.ToUpper(s.Login)),
	))

	rx := r.X + r.W - 141
	parts = append(parts, rupeeIcon(rx, hy+1, 16))
	parts = append(parts, fmt.Sprintf(
		`<text x="%d" y="%d" font-size="10" fill="%s">%s</text>`,
		rx+20, hy+14, colorRupee, formatCount(s.Stars),
	))

	kx := r.X + r.W - 58
	parts = append(parts, keyIcon(kx, hy+1, 18))
	parts = append(parts, fmt.Sprintf(
		`<text x="%d" y="%d" font-size="10" fill="%s">%d</text>`,
		kx+22, hy+14, colorKey, s.Repos,
	))

	sepY := r.Y + r.H
	parts = append(parts,
		fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1.5" opacity="0.5"/>`, r.X, sepY, r.X+r.W, sepY, colorBorder),
		fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="0.5" opacity="0.2"/>`, r.X, sepY, r.X+r.W, sepY, colorBorderHi),
	)

	return strings.Join(parts, "\n")
}

// renderEquipment draws the hero with sword and shield, a commit-derived
// level and the character stat sheet.
func renderEquipment(r Region, s app.ProfileStats) string {
	parts := []string{panelChrome(r, "EQUIPMENT")}

	lx := r.X + (r.W-16*6)/2
	ly := r.Y + 18
	parts = append(parts, pixelGrid(spriteHero, spriteHeroColors, lx, ly, 6, "float"))
	parts = append(parts, pixelGrid(spriteSword, spriteSwordColors, lx-32, ly+14, 4, ""))
	parts = append(parts, pixelGrid(spriteShield, spriteShieldColors, lx+16*6+10, ly+28, 4, ""))

	cy := ly + 104
	lvl := s.Commits/100 + 1
	if lvl > 99 {
		lvl = 99
	}
	parts = append(parts,
		fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" font-size="10" fill="%s">LV. %d</text>`, r.X+r.W/2, cy, colorGoldHi, lvl),
		fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" font-size="9" fill="%s">%s</text>`, r.X+r.W/2, cy+16, colorText, esc(strings.ToUpper(s.Login))),
	)

	rows := []struct {
		label string
		val   int
		color string
	}{
		{"ATK", s.Commits, colorHeart},
		{"DEF", s.Repos, colorTunic},
		{"STR", s.CurrentStreak, colorGreen},
		{"LUK", s.Stars, colorGold},
		{"WIS", s.Followers, colorMagic},
	}
	sy := r.Y + 160
	for i, row := range rows {
		rowY := sy + i*24
		parts = append(parts,
			fmt.Sprintf(`<text x="%d" y="%d" font-size="9" fill="%s">%s</text>`, r.X+18, rowY, colorTextDim, row.label),
			fmt.Sprintf(`<text x="%d" y="%d" font-size="7" fill="%s" letter-spacing="3">%s</text>`, r.X+60, rowY, colorTextDark, strings.Repeat("·", 12)),
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="end" font-size="9" fill="%s">%s</text>`, r.X+r.W-20, rowY, row.color, formatCount(row.val)),
		)
	}

	return strings.Join(parts, "\n")
}

// renderDungeonMap draws the contribution heatmap as explored dungeon rooms,
// clipped to the most recent 22 weeks.
func renderDungeonMap(r Region, weeks []app.ContributionWeek) string {
	parts := []string{panelChrome(r, "DUNGEON MAP")}

	const cell, gap = 13, 3
	step := cell + gap
	display := weeks
	if len(display) > 22 {
		display = display[len(display)-22:]
	}
	gridW := len(display) * step
	gridH := 7 * step
	ox := r.X + (r.W-gridW)/2
	oy := r.Y + 28

	dayLabels := []string{"S", "M", "T", "W", "T", "F", "S"}
	for i := 0; i < 7; i++ {
		if i%2 == 1 {
			parts = append(parts, fmt.Sprintf(
				`<text x="%d" y="%d" font-size="7" fill="%s">%s</text>`,
				ox-16, oy+i*step+10, colorTextDark, dayLabels[i],
			))
		}
	}

	for wi, w := range display {
		for di, d := range w.Days {
			lvl := heatLevel(d.Count)
			cx := ox + wi*step
			cy := oy + di*step
			parts = append(parts, fmt.Sprintf(
				`<rect x="%d" y="%d" width="%d" height="%d" rx="2" fill="%s"/>`,
				cx, cy, cell, cell, heatLevels[lvl],
			))
			if lvl > 0 {
				parts = append(parts, fmt.Sprintf(
					`<rect x="%d" y="%d" width="%d" height="%d" rx="2" fill="none" stroke="%s" stroke-width="0.4" opacity="0.25"/>`,
					cx, cy, cell, cell, colorBorderHi,
				))
			}
		}
	}

	ly := oy + gridH + 16
	parts = append(parts, fmt.Sprintf(`<text x="%d" y="%d" font-size="7" fill="%s">SAFE</text>`, ox, ly, colorTextDark))
	for i, lv := range heatLevels {
		parts = append(parts, fmt.Sprintf(
			`<rect x="%d" y="%d" width="13" height="13" rx="2" fill="%s"/>`,
			ox+38+i*18, ly-9, lv,
		))
	}
	parts = append(parts, fmt.Sprintf(`<text x="%d" y="%d" font-size="7" fill="%s">DUNGEON</text>`, ox+38+5*18+2, ly, colorTextDark))

	monthNames := []string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}
	lastMonth := time.Month(0)
	for wi, w := range display {
		if len(w.Days) == 0 {
			continue
		}
		dt, err := time.Parse("2006-01-02", w.Days[0].Date)
		if err != nil {
			continue
		}
		if dt.Month() != lastMonth {
			lastMonth = dt.Month()
			parts = append(parts, fmt.Sprintf(
				`<text x="%d" y="%d" font-size="7" fill="%s">%s</text>`,
				ox+wi*step, ly+18, colorTextDim, monthNames[dt.Month()-1],
			))
		}
	}

	return strings.Join(parts, "\n")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func heatLevel(count int) int {
	switch {
	case count == 0:
		return 0
	case count <= 2:
		return 1
	case count <= 5:
		return 2
	case count <= 9:
		return 3
	default:
		return 4
	}
}

// renderItems draws the six-slot language inventory. Missing languages
// leave dashed empty slots.
func renderItems(r Region, langs []app.LanguageShare) string {
	parts := []string{panelChrome(r, "- I T E M S -")}

	const numSlots, slotW, slotH = 6, 120, 94
	totalW := numSlots*slotW + (numSlots-1)*12
	sox := r.X + (r.W-totalW)/2
	soy := r.Y + 20

	for i := 0; i < numSlots; i++ {
		sx := sox + i*(slotW+12)
		sy := soy

		if i >= len(langs) {
			parts = append(parts,
				fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="%s"/>`, sx, sy, slotW, slotH, colorBG),
				fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="none" stroke="%s" stroke-width="1" stroke-dasharray="4,4"/>`, sx, sy, slotW, slotH, colorTextDark),
				fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" font-size="10" fill="%s">- -</text>`, sx+slotW/2, sy+slotH/2+4, colorTextDark),
			)
			continue
		}

		lang := langs[i]
		short, ok := langShort[lang.Name]
		if !ok {
			short = strings.ToUpper(lang.Name)
			if len(short) > 4 {
				short = short[:4]
			}
		}
		color, ok := langColors[lang.Name]
		if !ok {
			color = defaultLangColor
		}

		parts = append(parts,
			fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="%s"/>`, sx, sy, slotW, slotH, colorPanelHi),
			fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="none" stroke="%s" stroke-width="1.5"/>`, sx, sy, slotW, slotH, colorBorder),
		)

		const swatch = 32
		swx := sx + (slotW-swatch)/2
		swy := sy + 8
		cx := swx + swatch/2
		cy := swy + swatch/2
		parts = append(parts,
			fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="4" fill="%s" opacity="0.85"/>`, swx, swy, swatch, swatch, color),
			fmt.Sprintf(`<rect x="%d" y="%d" width="12" height="12" rx="2" fill="white" opacity="0.15" transform="rotate(45 %d %d)"/>`, cx-6, cy-6, cx, cy),
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" font-size="8" fill="%s">%s</text>`, sx+slotW/2, sy+54, colorText, esc(short)),
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" font-size="8" fill="%s">%.1f%%</text>`, sx+slotW/2, sy+70, color, lang.Percent),
		)

		const barW = slotW - 20
		barX := sx + 10
		barY := sy + 78
		fillW := float64(barW) * lang.Percent / 100
		if fillW < 2 {
			fillW = 2
		}
		parts = append(parts,
			fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="4" rx="2" fill="%s"/>`, barX, barY, barW, colorBG),
			fmt.Sprintf(`<rect x="%d" y="%d" width="%s" height="4" rx="2" fill="%s" opacity="0.7"/>`, barX, barY, f0(fillW), color),
		)
	}

	return strings.Join(parts, "\n")
}

// renderQuestLog draws recent commits as dialog-box quest entries. Ages are
// relative to ref so output depends only on the collected records.
func renderQuestLog(r Region, events []app.ActivityEvent, ref time.Time) string {
	parts := []string{panelChrome(r, "QUEST LOG")}

	if len(events) == 0 {
		parts = append(parts,
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" font-size="9" fill="%s">NO QUESTS RECORDED...</text>`, r.X+r.W/2, r.Y+r.H/2, colorTextDim),
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" font-size="10" fill="%s" class="cursor">▼</text>`, r.X+r.W/2, r.Y+r.H-16, colorCursor),
		)
		return strings.Join(parts, "\n")
	}

	ey := r.Y + 28
	const rowH = 32
	for i, ev := range events {
		repo := truncate(ev.Repo, 14)
		msg := truncate(ev.Message, 32)

		rowY := ey + i*rowH
		if i%2 == 0 {
			parts = append(parts, fmt.Sprintf(
				`<rect x="%d" y="%d" width="%d" height="%d" rx="2" fill="%s" opacity="0.35"/>`,
				r.X+10, rowY-10, r.W-20, rowH-2, colorPanelHi,
			))
		}
		parts = append(parts,
			fmt.Sprintf(`<text x="%d" y="%d" font-size="9" fill="%s">▶</text>`, r.X+18, rowY+4, colorGreen),
			fmt.Sprintf(`<text x="%d" y="%d" font-size="8" fill="%s">%s</text>`, r.X+38, rowY+4, colorGold, esc(ev.SHA)),
			fmt.Sprintf(`<text x="%d" y="%d" font-size="8" fill="%s">%s</text>`, r.X+110, rowY+4, colorBorderHi, esc(repo)),
			fmt.Sprintf(`<text x="%d" y="%d" font-size="8" fill="%s">%s</text>`, r.X+248, rowY+4, colorText, esc(msg)),
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="end" font-size="8" fill="%s">%s</text>`, r.X+r.W-22, rowY+4, colorTextDim, relTime(ev.CreatedAt, ref)),
		)
	}

	parts = append(parts, fmt.Sprintf(
		`<text x="%d" y="%d" text-anchor="middle" font-size="10" fill="%s" class="cursor">▼</text>`,
		r.X+r.W/2, r.Y+r.H-14, colorCursor,
	))

	return strings.Join(parts, "\n")
}

type partySegment struct {
	name  string
	count int
}

// partySegments orders companions by commit count descending, name
// ascending on ties, so equal inputs always produce the same bar.
func partySegments(byCompanion map[string]int) []partySegment {
	segs := make([]partySegment, 0, len(byCompanion))
	for name, count := range byCompanion {
		segs = append(segs, partySegment{name, count})
	}
	sort.Slice(segs, func(i, j int) bool {
		if segs[i].count != segs[j].count {
			return segs[i].count > segs[j].count
		}
		return segs[i].name < segs[j].name
	})
	return segs
}

// renderParty draws the collaboration bar: the hero's solo share in green,
// then one segment per companion tool.
func renderParty(r Region, c app.CollabBreakdown) string {
	parts := []string{panelChrome(r, "PARTY")}

	barX := r.X + 20
	barY := r.Y + 22
	barW := r.W - 120
	const barH = 16

	heroPct := 100.0
	if c.Total > 0 {
		heroPct = float64(c.Total-c.Assisted) / float64(c.Total) * 100
	}

	parts = append(parts,
		fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="%s"/>`, barX, barY, barW, barH, colorBG),
		fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="none" stroke="%s" stroke-width="0.5"/>`, barX, barY, barW, barH, colorBorderLo),
	)

	heroW := float64(barW) * heroPct / 100
	if heroW > 0 {
		parts = append(parts, fmt.Sprintf(
			`<rect x="%d" y="%d" width="%s" height="%d" rx="3" fill="%s" opacity="0.8"/>`,
			barX, barY, f0(heroW), barH, colorGreen,
		))
	}

	segs := partySegments(c.ByCompanion)
	ax := float64(barX) + heroW
	for _, seg := range segs {
		if c.Total == 0 {
			break
		}
		segW := float64(barW) * float64(seg.count) / float64(c.Total)
		color, ok := companionColors[seg.name]
		if !ok {
			color = colorMagic
		}
		if segW > 1 {
			parts = append(parts, fmt.Sprintf(
				`<rect x="%s" y="%d" width="%s" height="%d" fill="%s" opacity="0.8"/>`,
				f0(ax), barY, f0(segW), barH, color,
			))
			ax += segW
		}
	}

	parts = append(parts, fmt.Sprintf(
		`<text x="%d" y="%d" font-size="9" fill="%s">%.0f%%</text>`,
		barX+barW+14, barY+12, colorText, heroPct,
	))

	ly := barY + barH + 18
	parts = append(parts, fmt.Sprintf(
		`<text x="%d" y="%d" font-size="8" fill="%s">● HERO %.0f%%</text>`,
		barX, ly, colorGreen, heroPct,
	))
	lx := barX + 130
	for _, seg := range segs {
		pct := 0.0
		if c.Total > 0 {
			pct = float64(seg.count) / float64(c.Total) * 100
		}
		color, ok := companionColors[seg.name]
		if !ok {
			color = colorMagic
		}
		parts = append(parts, fmt.Sprintf(
			`<text x="%d" y="%d" font-size="8" fill="%s">● %s %.0f%%</text>`,
			lx, ly, color, esc(seg.name), pct,
		))
		lx += 120
	}

	return strings.Join(parts, "\n")
}

// renderFooter draws the save-screen footer. The timestamp is the fetch
// time of the underlying records, not render time.
func renderFooter(r Region, fetchedAt time.Time) string {
	stamp := fetchedAt.UTC().Format("2006-01-02 15:04 UTC")
	triforceColors := map[int]string{1: colorGold}

	return strings.Join([]string{
		fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="0.5" opacity="0.3"/>`, r.X+2, r.Y-6, r.X+r.W-2, r.Y-6, colorBorder),
		pixelGrid(spriteTriforce, triforceColors, r.X+10, r.Y, 4, ""),
		fmt.Sprintf(`<text x="%d" y="%d" font-size="9" fill="%s">▶ GAME SAVED</text>`, r.X+38, r.Y+10, colorGold),
		fmt.Sprintf(`<rect x="%d" y="%d" width="9" height="12" fill="%s" class="cursor"/>`, r.X+161, r.Y, colorCursor),
		fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" font-size="8" fill="%s">IT'S A SECRET TO EVERYBODY</text>`, r.X+r.W/2+30, r.Y+10, colorTextDim),
		fmt.Sprintf(`<text x="%d" y="%d" text-anchor="end" font-size="7" fill="%s">%s</text>`, r.X+r.W-10, r.Y+10, colorTextDark, stamp),
		pixelGrid(spriteTriforce, triforceColors, r.X+r.W-32, r.Y, 4, ""),
	}, "\n")
}
