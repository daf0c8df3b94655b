package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
// Uses background colour with spaces for a solid block.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bgColour + strings.Repeat(" ", width) + ansiReset
}

// ColourPreviewWithText returns a colour preview with text overlay.
// The text colour is black or white, whichever contrasts more with the block.
func ColourPreviewWithText(c Color, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := RGB{R: 255, G: 255, B: 255}
	if ContrastRatio(c, FromRGB(0, 0, 0)) > ContrastRatio(c, FromRGB(255, 255, 255)) {
		fg = RGB{}
	}

	bg := c.RGB()
	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, bg.R, bg.G, bg.B, ansiSuffix)
	fgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)

	// Pad or truncate text to fit width.
	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bgColour + fgColour + displayText + ansiReset
}

// FormatColourWithPreview formats a colour with its preview and hex code.
func FormatColourWithPreview(c Color, width int) string {
	return fmt.Sprintf("%s %s", ColourPreview(c.RGB(), width), c.Hex())
}

// ColourString returns text in the given foreground colour.
func ColourString(c Color, text string) string {
	rgb := c.RGB()
	fgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	return fgColour + text + ansiReset
}

// Swatches renders a palette as a row of solid blocks above a row of
// hex codes printed in their own colour.
func Swatches(p *Palette, width int) string {
	if width <= 0 {
		width = defaultWidth + 1
	}

	var bars, names strings.Builder
	for i, c := range p.All() {
		if i > 0 {
			bars.WriteString(" ")
			names.WriteString(" ")
		}
		bars.WriteString(ColourPreview(c.RGB(), width))
		label := fmt.Sprintf("%-*s", width, c.Hex())
		names.WriteString(ColourString(c, label))
	}

	return bars.String() + "\n" + names.String() + "\n"
}
