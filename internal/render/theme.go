package render

// fontFamily imports a pixel font with a local monospace fallback, so the
// card still renders when the hosted font is unreachable.
const fontFamily = "'Press Start 2P', 'Courier New', monospace"

// Game-screen palette.
const (
	colorBG       = "#080810"
	colorPanel    = "#0e1a24"
	colorPanelHi  = "#162030"
	colorPanelTop = "#1a2840"
	colorBorder   = "#0d9263"
	colorBorderHi = "#4aba91"
	colorBorderLo = "#06553a"
	colorGold     = "#d4ce46"
	colorGoldHi   = "#f0ea80"

	colorHeart      = "#d03030"
	colorHeartHi    = "#f06868"
	colorHeartEmpty = "#281818"
	colorRupee      = "#40b8f0"
	colorKey        = "#d4ce46"

	colorText     = "#e8eef4"
	colorTextDim  = "#6a9068"
	colorTextDark = "#3a5838"
	colorTitle    = "#4aba91"
	colorGreen    = "#38e850"

	colorMagic  = "#4090ff"
	colorTunic  = "#38a048"
	colorCursor = "#e8eef4"
)

// heatLevels are the heatmap intensity colors, empty to busiest.
var heatLevels = [5]string{"#101820", "#0d5030", "#0d9263", "#38c878", "#80ff98"}

// langShort abbreviates language names to fit the item slots.
var langShort = map[string]string{
	"Python": "PY", "TypeScript": "TS", "JavaScript": "JS",
	"Rust": "RST", "Go": "GO", "Shell": "SH",
	"HTML": "HTML", "CSS": "CSS", "Java": "JAVA",
	"C++": "C++", "C": "C", "Ruby": "RB",
	"Swift": "SWF", "Kotlin": "KT", "Dart": "DRT",
	"Lua": "LUA", "PHP": "PHP", "Scala": "SCL",
	"Haskell": "HSK", "Elixir": "ELX", "Zig": "ZIG",
	"Vue": "VUE", "Svelte": "SVT", "SCSS": "SCSS",
}

// langColors are the conventional per-language colors.
var langColors = map[string]string{
	"Python": "#3572A5", "TypeScript": "#3178c6", "JavaScript": "#f1e05a",
	"Rust": "#dea584", "Go": "#00ADD8", "Shell": "#89e051",
	"HTML": "#e34c26", "CSS": "#563d7c", "Java": "#b07219",
	"C++": "#f34b7d", "C": "#555555", "Ruby": "#701516",
	"Swift": "#F05138", "Kotlin": "#A97BFF", "Dart": "#00B4AB",
	"Lua": "#000080", "PHP": "#4F5D95", "Scala": "#c22d40",
	"Haskell": "#5e5086", "Elixir": "#6e4a7e", "Zig": "#ec915c",
	"Vue": "#41b883", "Svelte": "#ff3e00", "SCSS": "#c6538c",
}

const defaultLangColor = "#7a9878"

// companionColors color the party bar segments per companion.
var companionColors = map[string]string{
	"NAVI":  "#4090ff",
	"TATL":  "#40b8f0",
	"TAEL":  "#c070ff",
	"MIDNA": "#38c878",
	"FI":    "#d4ce46",
	"EZLO":  "#0d9263",
	"CIELA": "#ff9080",
}
