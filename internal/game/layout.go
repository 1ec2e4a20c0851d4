package game

import "image"

// Screen geometry shared by click handling and the renderer.
const (
	ScreenWidth  = 900
	ScreenHeight = 600

	// overlayPercent is the share of the screen covered by store/chore overlays.
	overlayPercent = 70

	storeRowHeight = 50
	storeRowGap    = 20
	choreRowHeight = 60
	choreRowGap    = 20

	// TargetSize is the edge of a square chore collectible.
	TargetSize = 30
)

// Button identifies a clickable control on the play screen.
type Button int

const (
	ButtonFeed Button = iota
	ButtonPlay
	ButtonClean
	ButtonRest
	ButtonTaskboard
	ButtonStore
	buttonCount
)

var buttonLabels = [buttonCount]string{"Feed", "Play", "Clean", "Rest", "The Taskboard", "Whiskermart"}

func (b Button) String() string {
	if b < 0 || b >= buttonCount {
		return "unknown"
	}
	return buttonLabels[b]
}

var buttonRects = [buttonCount]image.Rectangle{
	ButtonFeed:      rectXYWH(50, 500, 100, 40),
	ButtonPlay:      rectXYWH(160, 500, 100, 40),
	ButtonClean:     rectXYWH(270, 500, 100, 40),
	ButtonRest:      rectXYWH(380, 500, 100, 40),
	ButtonTaskboard: rectXYWH(700, 500, 160, 40),
	ButtonStore:     rectXYWH(700, 440, 160, 40),
}

// Buttons returns every play-screen button in draw order.
func Buttons() []Button {
	out := make([]Button, 0, buttonCount)
	for b := Button(0); b < buttonCount; b++ {
		out = append(out, b)
	}
	return out
}

// ButtonRect returns the hit box of b.
func ButtonRect(b Button) image.Rectangle { return buttonRects[b] }

// ButtonAt returns the play-screen button under (x, y).
func ButtonAt(x, y int) (Button, bool) {
	pt := image.Pt(x, y)
	for b := Button(0); b < buttonCount; b++ {
		if pt.In(buttonRects[b]) {
			return b, true
		}
	}
	return 0, false
}

// OverlayRect is the centered panel used by the store and the taskboard.
func OverlayRect() image.Rectangle {
	w := ScreenWidth * overlayPercent / 100
	h := ScreenHeight * overlayPercent / 100
	return rectXYWH((ScreenWidth-w)/2, (ScreenHeight-h)/2, w, h)
}

// BackRect is the Back button in the top-right corner of an overlay.
func BackRect() image.Rectangle {
	o := OverlayRect()
	return rectXYWH(o.Max.X-110, o.Min.Y+16, 90, 36)
}

// StoreRowRect is the i-th item row of the store overlay.
func StoreRowRect(i int) image.Rectangle {
	o := OverlayRect()
	return rectXYWH(o.Min.X+40, o.Min.Y+80+i*(storeRowHeight+storeRowGap), o.Dx()-80, storeRowHeight)
}

// ChoreRowRect is the i-th chore button on the taskboard.
func ChoreRowRect(i int) image.Rectangle {
	o := OverlayRect()
	return rectXYWH(o.Min.X+50, o.Min.Y+100+i*(choreRowHeight+choreRowGap), o.Dx()-100, choreRowHeight)
}

func rectXYWH(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}
