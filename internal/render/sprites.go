package render

// Pixel art sprites. Matrix values index into a color map; zero is
// transparent.

// spriteHero is the 16x16 front-facing hero.
// 1=cap 2=cap highlight 3=hair 4=skin 5=eyes 6=tunic 7=tunic highlight
// 8=belt 9=boots 10=blush
var spriteHero = [][]int{
	{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
	{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
	{0, 0, 0, 3, 3, 1, 1, 1, 1, 1, 1, 3, 3, 0, 0, 0},
	{0, 0, 3, 3, 4, 4, 4, 4, 4, 4, 4, 4, 3, 3, 0, 0},
	{0, 0, 3, 4, 4, 5, 4, 4, 4, 4, 5, 4, 4, 3, 0, 0},
	{0, 0, 0, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 0, 0, 0},
	{0, 0, 0, 0, 4, 4, 10, 4, 4, 10, 4, 4, 0, 0, 0},
	{0, 0, 0, 0, 0, 6, 6, 6, 6, 6, 6, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 6, 7, 6, 6, 6, 6, 7, 6, 0, 0, 0, 0},
	{0, 0, 0, 6, 6, 6, 8, 8, 8, 8, 6, 6, 6, 0, 0, 0},
	{0, 0, 0, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 0, 0, 0},
	{0, 0, 0, 0, 0, 6, 6, 0, 0, 6, 6, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 4, 4, 0, 0, 4, 4, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 9, 9, 9, 0, 0, 9, 9, 9, 0, 0, 0, 0},
}

var spriteHeroColors = map[int]string{
	1: "#1a8a1e", 2: "#38c848", 3: "#e8b830", 4: "#f0b878",
	5: "#183018", 6: "#28a038", 7: "#48c858", 8: "#886030",
	9: "#604020", 10: "#ff9080",
}

// spriteHeart is a 7x7 heart; 2 marks the highlight pixel.
var spriteHeart = [][]int{
	{0, 1, 1, 0, 1, 1, 0},
	{1, 2, 1, 1, 1, 2, 1},
	{1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1},
	{0, 1, 1, 1, 1, 1, 0},
	{0, 0, 1, 1, 1, 0, 0},
	{0, 0, 0, 1, 0, 0, 0},
}

var spriteTriforce = [][]int{
	{0, 0, 1, 0, 0},
	{0, 1, 1, 1, 0},
	{1, 1, 1, 1, 1},
}

var spriteSword = [][]int{
	{0, 0, 1, 0, 0},
	{0, 0, 1, 0, 0},
	{0, 0, 1, 0, 0},
	{0, 0, 1, 0, 0},
	{0, 0, 1, 0, 0},
	{0, 0, 1, 0, 0},
	{0, 1, 1, 1, 0},
	{0, 1, 1, 1, 0},
	{1, 1, 2, 1, 1},
	{0, 0, 2, 0, 0},
	{0, 0, 2, 0, 0},
	{0, 0, 2, 0, 0},
	{0, 0, 3, 0, 0},
	{0, 0, 3, 0, 0},
}

var spriteSwordColors = map[int]string{1: "#c0c8d8", 2: "#886030", 3: "#d4ce46"}

var spriteShield = [][]int{
	{0, 1, 1, 1, 1, 1, 0},
	{1, 2, 2, 2, 2, 2, 1},
	{1, 2, 3, 3, 3, 2, 1},
	{1, 2, 3, 4, 3, 2, 1},
	{1, 2, 3, 4, 3, 2, 1},
	{1, 2, 3, 3, 3, 2, 1},
	{1, 2, 2, 2, 2, 2, 1},
	{0, 1, 1, 1, 1, 1, 0},
}

var spriteShieldColors = map[int]string{1: "#1a6b34", 2: "#28a038", 3: "#d03030", 4: "#d4ce46"}
