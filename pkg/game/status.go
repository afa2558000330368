package game

import (
	"fmt"
	"image/color"
)

// Palette shared by every frontend.
var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorText       = color.RGBA{255, 255, 255, 255}
	ColorWarning    = color.RGBA{255, 80, 80, 255}
	ColorPostRed    = color.RGBA{255, 60, 60, 255}
	ColorPostWhite  = color.RGBA{255, 255, 255, 255}
	ColorCar        = color.RGBA{255, 140, 0, 255}
)

// OffRoadLabel is appended to the status line while off the road.
const OffRoadLabel = "   OFF ROAD!"

// StatusLine formats the readout shown in the corner of the screen.
func StatusLine(st Status) string {
	line := fmt.Sprintf("Gear:%d  Speed:%.1f  Player X:%.3f", st.Gear, st.Speed, st.Lateral)
	if st.OffRoad {
		line += OffRoadLabel
	}
	return line
}

// StatusColor picks the readout colour.
func StatusColor(st Status) color.RGBA {
	if st.OffRoad {
		return ColorWarning
	}
	return ColorText
}

// PostColors returns the left and right marker colours of a post.
func PostColors(leftRed bool) (left, right color.RGBA) {
	if leftRed {
		return ColorPostRed, ColorPostWhite
	}
	return ColorPostWhite, ColorPostRed
}
