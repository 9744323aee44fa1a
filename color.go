package devkit

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Component ranges. Out-of-range input is clamped, never rejected.
const (
	MaxChannel    = 255
	MaxHue        = 359
	MaxSaturation = 100
	MaxLightness  = 100
)

// hexPattern accepts six hex digits with an optional leading '#'.
var hexPattern = regexp.MustCompile(`^#?([0-9A-Fa-f]{6})$`)

// RGB is a color in 8-bit channels.
type RGB struct {
	R, G, B int
}

// String renders the CSS functional notation, e.g. rgb(59, 130, 246).
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Clamp limits every channel to [0,255].
func (c RGB) Clamp() RGB {
	return RGB{
		R: clampInt(c.R, 0, MaxChannel),
		G: clampInt(c.G, 0, MaxChannel),
		B: clampInt(c.B, 0, MaxChannel),
	}
}

// HSL is a color as integer hue degrees and saturation/lightness percentages.
type HSL struct {
	H, S, L int
}

// String renders the CSS functional notation, e.g. hsl(217, 91%, 60%).
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// Clamp limits hue to [0,359] and saturation/lightness to [0,100].
func (c HSL) Clamp() HSL {
	return HSL{
		H: clampInt(c.H, 0, MaxHue),
		S: clampInt(c.S, 0, MaxSaturation),
		L: clampInt(c.L, 0, MaxLightness),
	}
}

// HexToRGB parses six hex digits, with or without a leading '#'.
func HexToRGB(hex string) (RGB, error) {
	start := time.Now()
	m := hexPattern.FindStringSubmatch(strings.TrimSpace(hex))
	if m == nil {
		err := newConversionError(ErrInvalidColorInput, "color.hex_to_rgb",
			fmt.Errorf("expected 6 hex digits, got %q", hex))
		observe(SignalColor, "color.hex_to_rgb", len(hex), 0, start, err)
		return RGB{}, err
	}

	c, err := colorful.Hex("#" + strings.ToLower(m[1]))
	if err != nil {
		err = newConversionError(ErrInvalidColorInput, "color.hex_to_rgb", err)
		observe(SignalColor, "color.hex_to_rgb", len(hex), 0, start, err)
		return RGB{}, err
	}
	r, g, b := c.RGB255()
	observe(SignalColor, "color.hex_to_rgb", len(hex), 3, start, nil)
	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}

// RGBToHex renders a clamped RGB color as lowercase #rrggbb.
func RGBToHex(c RGB) string {
	c = c.Clamp()
	return toColorful(c).Hex()
}

// RGBToHSL converts a clamped RGB color to integer HSL.
//
// Lightness is (max+min)/2 over normalized channels. Achromatic colors
// (max == min) have zero hue and saturation. Otherwise saturation is
// d/(2-max-min) above 50% lightness and d/(max+min) at or below it, and hue
// is taken piecewise from the dominant channel. All three are rounded to
// the nearest integer; a hue that rounds to 360 wraps to 0.
func RGBToHSL(c RGB) HSL {
	c = c.Clamp()
	h, s, l := toColorful(c).Hsl()
	return HSL{
		H: int(math.Round(h)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HSLToRGB converts a clamped HSL color to RGB using the six-sextant
// hue-to-channel helper, rounding each channel to the nearest integer.
func HSLToRGB(c HSL) RGB {
	c = c.Clamp()
	col := colorful.Hsl(float64(c.H), float64(c.S)/100, float64(c.L)/100)
	return RGB{
		R: clampInt(int(math.Round(col.R*MaxChannel)), 0, MaxChannel),
		G: clampInt(int(math.Round(col.G*MaxChannel)), 0, MaxChannel),
		B: clampInt(int(math.Round(col.B*MaxChannel)), 0, MaxChannel),
	}
}

// ColorValue holds one color in all three representations.
//
// The representations are always mutually consistent: every constructor
// and With method recomputes the other two from the one that changed.
// Because HSL is quantized to whole degrees and percentages, a trip
// HEX→RGB→HSL→RGB→HEX can move a channel by a few units (at most 5 over
// the full RGB cube, typically 0 or 1).
type ColorValue struct {
	Hex string
	RGB RGB
	HSL HSL
}

// ColorFromHex builds a ColorValue from a hex string.
func ColorFromHex(hex string) (ColorValue, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return ColorValue{}, err
	}
	return ColorFromRGB(rgb), nil
}

// ColorFromRGB builds a ColorValue from RGB, clamping out-of-range channels.
func ColorFromRGB(c RGB) ColorValue {
	start := time.Now()
	c = c.Clamp()
	v := ColorValue{Hex: RGBToHex(c), RGB: c, HSL: RGBToHSL(c)}
	observe(SignalColor, "color.from_rgb", 3, 3, start, nil)
	return v
}

// ColorFromHSL builds a ColorValue from HSL, clamping out-of-range components.
// The HSL field keeps the clamped input rather than the value recomputed
// from RGB, so an edited hue or percentage is not disturbed by rounding.
func ColorFromHSL(c HSL) ColorValue {
	start := time.Now()
	c = c.Clamp()
	rgb := HSLToRGB(c)
	v := ColorValue{Hex: RGBToHex(rgb), RGB: rgb, HSL: c}
	observe(SignalColor, "color.from_hsl", 3, 3, start, nil)
	return v
}

// WithHex replaces the hex representation and recomputes RGB and HSL.
func (v ColorValue) WithHex(hex string) (ColorValue, error) {
	return ColorFromHex(hex)
}

// WithRGB replaces the RGB representation and recomputes hex and HSL.
func (v ColorValue) WithRGB(c RGB) ColorValue {
	return ColorFromRGB(c)
}

// WithHSL replaces the HSL representation and recomputes RGB and hex.
func (v ColorValue) WithHSL(c HSL) ColorValue {
	return ColorFromHSL(c)
}

// ColorFormat selects a CSS rendering.
type ColorFormat string

const (
	ColorFormatHex ColorFormat = "hex"
	ColorFormatRGB ColorFormat = "rgb"
	ColorFormatHSL ColorFormat = "hsl"
)

// CSS renders a `color: ...;` declaration in the requested format.
func (v ColorValue) CSS(format ColorFormat) (string, error) {
	switch format {
	case ColorFormatHex:
		return "color: " + v.Hex + ";", nil
	case ColorFormatRGB:
		return "color: " + v.RGB.String() + ";", nil
	case ColorFormatHSL:
		return "color: " + v.HSL.String() + ";", nil
	default:
		return "", newConversionError(ErrInvalidFormat, "color.css", fmt.Errorf("unknown color format %q", format))
	}
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / MaxChannel,
		G: float64(c.G) / MaxChannel,
		B: float64(c.B) / MaxChannel,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
