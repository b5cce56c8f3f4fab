package render

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// sparkleSeed fixes the decorative scatter so repeated runs over the same
// records produce byte-identical output.
const sparkleSeed = 42

// ff formats a float with the shortest exact representation.
func ff(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// f0 formats a float rounded to a whole number.
func f0(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// esc escapes user supplied text for embedding in markup.
func esc(s string) string {
	return xmlEscaper.Replace(s)
}

// formatCount renders a counter, comma-grouping thousands.
func formatCount(n int) string {
	s := strconv.Itoa(n)
	if n < 1000 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}

// relTime renders a compact age like the game HUD would: now, 5m, 3h, 2d, 1mo.
func relTime(t, ref time.Time) string {
	if t.IsZero() {
		return ""
	}
	s := int(ref.Sub(t).Seconds())
	switch {
	case s < 60:
		return "now"
	case s < 3600:
		return fmt.Sprintf("%dm", s/60)
	case s < 86400:
		return fmt.Sprintf("%dh", s/3600)
	}
	d := s / 86400
	switch {
	case d == 1:
		return "1d"
	case d < 30:
		return fmt.Sprintf("%dd", d)
	}
	return fmt.Sprintf("%dmo", d/30)
}

// renderDefs declares the shared styles: font import with local fallback,
// gradients, glow filter and the scanline pattern. Animations are CSS
// keyframes only; consuming renderers strip scripted and SMIL animation.
func renderDefs() string {
	return fmt.Sprintf(`<defs>
  <style>
    @import url('https://fonts.googleapis.com/css2?family=Press+Start+2P&amp;display=swap');
    text { font-family: %s; }
    @keyframes float { 0%%,100%% { transform: translateY(0); } 50%% { transform: translateY(-4px); } }
    @keyframes cursor-blink { 0%%,49%% { opacity:1; } 50%%,100%% { opacity:0; } }
    @keyframes shimmer { 0%% { opacity:0.2; } 50%% { opacity:0.7; } 100%% { opacity:0.2; } }
    @keyframes glow { 0%%,100%% { opacity:0.4; } 50%% { opacity:0.8; } }
    @keyframes pulse { 0%%,100%% { opacity:0.6; } 50%% { opacity:1; } }
    .float { animation: float 3s ease-in-out infinite; }
    .cursor { animation: cursor-blink 1s step-end infinite; }
    .shimmer { animation: shimmer 4s ease-in-out infinite; }
    .glow { animation: glow 3s ease-in-out infinite; }
    .pulse { animation: pulse 2s ease-in-out infinite; }
  </style>
  <linearGradient id="panelGrad" x1="0" y1="0" x2="0" y2="1">
    <stop offset="0%%" stop-color="%s" />
    <stop offset="100%%" stop-color="%s" />
  </linearGradient>
  <linearGradient id="barGrad" x1="0" y1="0" x2="1" y2="0">
    <stop offset="0%%" stop-color="%s" />
    <stop offset="100%%" stop-color="%s" />
  </linearGradient>
  <filter id="glow-gold">
    <feGaussianBlur stdDeviation="2" result="blur"/>
    <feMerge><feMergeNode in="blur"/><feMergeNode in="SourceGraphic"/></feMerge>
  </filter>
  <pattern id="scanlines" patternUnits="userSpaceOnUse" width="2" height="2">
    <rect width="2" height="1" fill="black" opacity="0.06"/>
  </pattern>
</defs>`, fontFamily, colorPanelTop, colorPanel, colorBorder, colorBorderHi)
}

// pixelGrid emits one rect per set pixel of the sprite matrix.
func pixelGrid(matrix [][]int, colors map[int]string, x, y, ps int, cssClass string) string {
	var rects []string
	if cssClass != "" {
		rects = append(rects, fmt.Sprintf(`<g class="%s">`, cssClass))
	}
	for r, row := range matrix {
		for c, val := range row {
			color, ok := colors[val]
			if val == 0 || !ok {
				continue
			}
			rects = append(rects, fmt.Sprintf(
				`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
				x+c*ps, y+r*ps, ps, ps, color,
			))
		}
	}
	if cssClass != "" {
		rects = append(rects, "</g>")
	}
	return strings.Join(rects, "\n")
}

// pixelHeart emits a filled or empty HUD heart.
func pixelHeart(x, y, ps int, filled bool) string {
	var rects []string
	for r, row := range spriteHeart {
		for c, val := range row {
			if val == 0 {
				continue
			}
			fill := colorHeartEmpty
			if filled {
				fill = colorHeart
				if val == 2 {
					fill = colorHeartHi
				}
			}
			rects = append(rects, fmt.Sprintf(
				`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
				x+c*ps, y+r*ps, ps, ps, fill,
			))
		}
	}
	return strings.Join(rects, "\n")
}

// rupeeIcon draws the gem counter icon.
func rupeeIcon(x, y, size int) string {
	s := float64(size)
	fx := float64(x)
	fy := float64(y)
	hw := s * 0.4
	return fmt.Sprintf(`<polygon points="%s,%s %s,%s %s,%s %s,%s %s,%s %s,%s" fill="%s" opacity="0.9"/>
<polygon points="%s,%s %s,%s %s,%s %s,%s" fill="%s" opacity="0.6"/>`,
		ff(fx+hw), ff(fy), ff(fx+s*0.8), ff(fy+s*0.3), ff(fx+s*0.8), ff(fy+s*0.7),
		ff(fx+hw), ff(fy+s), ff(fx), ff(fy+s*0.7), ff(fx), ff(fy+s*0.3), colorRupee,
		ff(fx+hw), ff(fy), ff(fx+hw), ff(fy+s), ff(fx+s*0.8), ff(fy+s*0.7), ff(fx+s*0.8), ff(fy+s*0.3), colorRupee,
	)
}

// keyIcon draws the key counter icon.
func keyIcon(x, y, size int) string {
	return fmt.Sprintf(`<circle cx="%d" cy="%d" r="4.5" fill="none" stroke="%s" stroke-width="2"/>
<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2"/>
<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2"/>`,
		x+5, y+5, colorKey,
		x+9, y+5, x+size, y+5, colorKey,
		x+14, y+5, x+14, y+9, colorKey,
	)
}

// cornerOrnament draws a gold L-shaped corner. corner is tl, tr, bl or br.
func cornerOrnament(x, y int, corner string, size int) string {
	g := colorGold
	s := size
	switch corner {
	case "tl":
		return fmt.Sprintf(`<path d="M%d,%d L%d,%d L%d,%d" fill="none" stroke="%s" stroke-width="2.5"/><rect x="%d" y="%d" width="4" height="4" fill="%s" rx="1"/>`,
			x, y+s, x, y, x+s, y, g, x-1, y-1, g)
	case "tr":
		return fmt.Sprintf(`<path d="M%d,%d L%d,%d L%d,%d" fill="none" stroke="%s" stroke-width="2.5"/><rect x="%d" y="%d" width="4" height="4" fill="%s" rx="1"/>`,
			x-s, y, x, y, x, y+s, g, x-2, y-1, g)
	case "bl":
		return fmt.Sprintf(`<path d="M%d,%d L%d,%d L%d,%d" fill="none" stroke="%s" stroke-width="2.5"/><rect x="%d" y="%d" width="4" height="4" fill="%s" rx="1"/>`,
			x, y-s, x, y, x+s, y, g, x-1, y-2, g)
	case "br":
		return fmt.Sprintf(`<path d="M%d,%d L%d,%d L%d,%d" fill="none" stroke="%s" stroke-width="2.5"/><rect x="%d" y="%d" width="4" height="4" fill="%s" rx="1"/>`,
			x-s, y, x, y, x, y-s, g, x-2, y-2, g)
	}
	return ""
}

// panelChrome draws a panel: gradient background, thick layered border,
// gold corners and an inset title tab.
func panelChrome(r Region, title string) string {
	parts := []string{
		fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="url(#panelGrad)"/>`, r.X, r.Y, r.W, r.H),
		fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="none" stroke="%s" stroke-width="3"/>`, r.X, r.Y, r.W, r.H, colorBorderLo),
		fmt.Sprintf(`<rect x="%s" y="%s" width="%d" height="%d" rx="2" fill="none" stroke="%s" stroke-width="1.5"/>`, ff(float64(r.X)+1.5), ff(float64(r.Y)+1.5), r.W-3, r.H-3, colorBorder),
		fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="1" fill="none" stroke="%s" stroke-width="0.5" opacity="0.25"/>`, r.X+3, r.Y+3, r.W-6, r.H-6, colorBorderHi),
		cornerOrnament(r.X+2, r.Y+2, "tl", 10),
		cornerOrnament(r.X+r.W-2, r.Y+2, "tr", 10),
		cornerOrnament(r.X+2, r.Y+r.H-2, "bl", 10),
		cornerOrnament(r.X+r.W-2, r.Y+r.H-2, "br", 10),
	}
	if title != "" {
		tx := r.X + 18
		tw := len(title)*8 + 16
		parts = append(parts,
			fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="14" rx="2" fill="%s"/>`, tx-6, r.Y-7, tw, colorBG),
			fmt.Sprintf(`<text x="%d" y="%d" font-size="9" fill="%s" letter-spacing="1">%s</text>`, tx, r.Y+4, colorGold, title),
		)
	}
	return strings.Join(parts, "\n")
}

// renderOuterBorder draws the double border around the entire card.
func renderOuterBorder() string {
	return fmt.Sprintf(`<rect x="0" y="0" width="%d" height="%d" rx="6" fill="%s"/>
<rect x="3" y="3" width="%d" height="%d" rx="4" fill="none" stroke="%s" stroke-width="3"/>
<rect x="6" y="6" width="%d" height="%d" rx="3" fill="none" stroke="%s" stroke-width="1.5"/>
<rect x="9" y="9" width="%d" height="%d" rx="2" fill="none" stroke="%s" stroke-width="0.5" opacity="0.3"/>
%s
%s
%s
%s`,
		CanvasWidth, CanvasHeight, colorBG,
		CanvasWidth-6, CanvasHeight-6, colorBorderLo,
		CanvasWidth-12, CanvasHeight-12, colorBorder,
		CanvasWidth-18, CanvasHeight-18, colorBorderHi,
		cornerOrnament(4, 4, "tl", 14),
		cornerOrnament(CanvasWidth-4, 4, "tr", 14),
		cornerOrnament(4, CanvasHeight-4, "bl", 14),
		cornerOrnament(CanvasWidth-4, CanvasHeight-4, "br", 14),
	)
}

// renderScanlines overlays the CRT scanline pattern.
func renderScanlines() string {
	return fmt.Sprintf(`<rect x="0" y="0" width="%d" height="%d" fill="url(#scanlines)" rx="6"/>`, CanvasWidth, CanvasHeight)
}

// renderSparkles scatters dim gold particles. Positions come from the
// provided generator; the assembler seeds it with sparkleSeed so the
// scatter is the same on every run.
func renderSparkles(rng *rand.Rand) string {
	sizes := []string{"1.5", "2", "2.5"}
	parts := make([]string, 0, 15)
	for i := 0; i < 15; i++ {
		sx := 30 + rng.Intn(CanvasWidth-60+1)
		sy := 60 + rng.Intn(CanvasHeight-120+1)
		size := sizes[rng.Intn(len(sizes))]
		delay := rng.Float64() * 6
		parts = append(parts, fmt.Sprintf(
			`<circle cx="%d" cy="%d" r="%s" fill="%s" opacity="0.12" class="shimmer" style="animation-delay:%.1fs"/>`,
			sx, sy, size, colorGold, delay,
		))
	}
	return strings.Join(parts, "\n")
}
