package core

import "fmt"

// Color represents a foreground color for a screen cell.
// Each color carries an RGB value so the terminal and the desktop window
// can share one palette.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault   Color = iota
	ColorSky             // Background sky
	ColorGrass           // Platform top
	ColorDirt            // Platform body
	ColorDirtDark        // Platform edge shading
	ColorArmor           // Knight helmet and trim
	ColorTunic           // Knight body
	ColorBoots           // Knight legs
	ColorSteel           // Sword blade
	ColorGold            // Sword hilt
	ColorGoblin          // Goblin skin
	ColorGoblinFlash     // Goblin hit flash
	ColorHeart           // Full heart
	ColorHeartEmpty      // Missing heart outline
	ColorHUD             // HUD text
	ColorWarning         // Game over / pause banners
	ColorDim             // Secondary text
)

type rgb struct{ r, g, b uint8 }

var palette = map[Color]rgb{
	ColorDefault:     {0xFF, 0xFF, 0xFF},
	ColorSky:         {0x87, 0xCE, 0xEB},
	ColorGrass:       {0x22, 0x8B, 0x22},
	ColorDirt:        {0x8B, 0x45, 0x13},
	ColorDirtDark:    {0x65, 0x43, 0x21},
	ColorArmor:       {0xC0, 0xC0, 0xC0},
	ColorTunic:       {0x41, 0x69, 0xE1},
	ColorBoots:       {0x2E, 0x34, 0x40},
	ColorSteel:       {0xE8, 0xE8, 0xE8},
	ColorGold:        {0xFF, 0xD7, 0x00},
	ColorGoblin:      {0x22, 0x8B, 0x22},
	ColorGoblinFlash: {0xFF, 0xFF, 0xFF},
	ColorHeart:       {0xFF, 0x00, 0x00},
	ColorHeartEmpty:  {0x80, 0x00, 0x00},
	ColorHUD:         {0xFF, 0xFF, 0xFF},
	ColorWarning:     {0xFF, 0xD7, 0x00},
	ColorDim:         {0x8A, 0x8A, 0x8A},
}

// RGB returns the color's components. Unknown colors are white.
func (c Color) RGB() (r, g, b uint8) {
	v, ok := palette[c]
	if !ok {
		v = palette[ColorDefault]
	}
	return v.r, v.g, v.b
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
