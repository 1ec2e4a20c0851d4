package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Feline-Finances/internal/game"
)

var face = text.NewGoXFace(basicfont.Face7x13)

var (
	colInk       = color.RGBA{R: 40, G: 34, B: 48, A: 255}
	colPanel     = color.RGBA{R: 250, G: 246, B: 238, A: 240}
	colPanelEdge = color.RGBA{R: 120, G: 104, B: 90, A: 255}
	colButton    = color.RGBA{R: 92, G: 120, B: 170, A: 255}
	colHover     = color.RGBA{R: 120, G: 150, B: 205, A: 255}
	colDisabled  = color.RGBA{R: 150, G: 150, B: 158, A: 255}
	colWarn      = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	colMoney     = color.RGBA{R: 40, G: 140, B: 70, A: 255}
	colShade     = color.RGBA{A: 120}
)

var moodBackground = map[game.Mood]color.RGBA{
	game.MoodHappy:     {R: 214, G: 236, B: 214, A: 255},
	game.MoodEnergetic: {R: 250, G: 236, B: 190, A: 255},
	game.MoodSad:       {R: 196, G: 206, B: 228, A: 255},
	game.MoodSick:      {R: 222, G: 200, B: 200, A: 255},
}

var coatColours = [...]color.RGBA{
	game.CatOrange: {R: 230, G: 140, B: 50, A: 255},
	game.CatGrey:   {R: 140, G: 140, B: 150, A: 255},
	game.CatWhite:  {R: 240, G: 240, B: 236, A: 255},
	game.CatCalico: {R: 245, G: 235, B: 220, A: 255},
}

var statColours = [...]color.RGBA{
	{R: 230, G: 126, B: 34, A: 255},
	{R: 241, G: 196, B: 15, A: 255},
	{R: 52, G: 152, B: 219, A: 255},
	{R: 26, G: 188, B: 156, A: 255},
}

func drawText(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

func drawTextCentered(dst *ebiten.Image, s string, r image.Rectangle, clr color.Color) {
	w, h := text.Measure(s, face, 0)
	x := r.Min.X + (r.Dx()-int(w))/2
	y := r.Min.Y + (r.Dy()-int(h))/2
	drawText(dst, s, x, y, clr)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.FillRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1.5, clr, false)
}

func (a *App) drawButton(dst *ebiten.Image, r image.Rectangle, label string, enabled bool) {
	bg := colButton
	switch {
	case !enabled:
		bg = colDisabled
	case a.cursor.In(r):
		bg = colHover
	}
	fillRect(dst, r, bg)
	strokeRect(dst, r, colInk)
	drawTextCentered(dst, label, r, color.White)
}

// --- Setup ---

func (a *App) drawSetup(dst *ebiten.Image, s game.Setup) {
	dst.Fill(color.RGBA{R: 236, G: 226, B: 244, A: 255})
	drawTextCentered(dst, "CREATE YOUR CAT", image.Rect(0, 60, game.ScreenWidth, 90), colInk)

	cursor := ""
	if a.blink() {
		cursor = "_"
	}
	rows := []string{
		"Name:        " + s.Name + cursor,
		"Cat Type:    < " + s.Type.String() + " >",
		"Personality: < " + s.Personality.String() + " >",
		"[ Start Game ]",
	}
	for i, line := range rows {
		r := image.Rect(250, 160+i*60, 650, 200+i*60)
		if game.SetupField(i) == s.Field {
			fillRect(dst, r, colHover)
			strokeRect(dst, r, colInk)
		}
		drawText(dst, line, r.Min.X+20, r.Min.Y+14, colInk)
	}

	hint := "Up/Down select  Left/Right change  type a name  Enter on Start"
	if s.Field == game.FieldStart && s.Name == "" {
		hint = "Your cat needs a name first"
	}
	drawTextCentered(dst, hint, image.Rect(0, 440, game.ScreenWidth, 460), colPanelEdge)

	// Preview.
	a.drawCat(dst, 450, 520, 0.5, s.Type, game.MoodHappy)
}

// --- Play ---

func (a *App) drawPlay(dst *ebiten.Image, snap game.Snapshot) {
	bg, ok := moodBackground[snap.Mood]
	if !ok {
		bg = moodBackground[game.MoodHappy]
	}
	dst.Fill(bg)

	title, personality := petHeader(snap.Pet)
	drawTextCentered(dst, title, image.Rect(300, 14, 600, 34), colInk)
	drawTextCentered(dst, personality, image.Rect(300, 36, 600, 56), colPanelEdge)

	a.drawStats(dst, snap)
	a.drawWallet(dst, snap)
	a.drawCat(dst, 450, 250, 1, snap.Pet.Type, snap.Mood)
	drawTextCentered(dst, fmt.Sprintf("%s is %s", snap.Pet.Name, snap.Mood), image.Rect(300, 340, 600, 360), colInk)

	a.activity.Draw(dst, 40, 380, 440)

	for _, b := range game.Buttons() {
		a.drawButton(dst, game.ButtonRect(b), b.String(), buttonEnabled(b, snap))
	}
	a.drawTooltip(dst, snap)

	switch {
	case snap.StoreOpen:
		a.drawStore(dst, snap)
	case snap.Chore != game.ChoreIdle:
		a.drawTaskboard(dst, snap)
	}

	if a.showHelp {
		ebitenutil.DebugPrintAt(dst, "C copy status  M mute  H help  Esc close  Ctrl+Q quit", 8, game.ScreenHeight-18)
	}
	if a.notice != "" {
		drawText(dst, a.notice, 500, 560, colInk)
	}
}

// petHeader is the two-line title above the cat.
func petHeader(p game.Pet) (title, personality string) {
	return fmt.Sprintf("%s the %s Cat", upper.String(p.Name), p.Type), "Personality: " + p.Personality.String()
}

func buttonEnabled(b game.Button, snap game.Snapshot) bool {
	var act game.Action
	switch b {
	case game.ButtonFeed:
		act = game.ActionFeed
	case game.ButtonPlay:
		act = game.ActionPlay
	case game.ButtonClean:
		act = game.ActionClean
	default:
		return true
	}
	item, _ := act.Requirement()
	return snap.Economy.Inventory[item] > 0
}

func (a *App) drawTooltip(dst *ebiten.Image, snap game.Snapshot) {
	if snap.StoreOpen || snap.Chore != game.ChoreIdle {
		return
	}
	b, ok := game.ButtonAt(a.cursor.X, a.cursor.Y)
	if !ok || buttonEnabled(b, snap) {
		return
	}
	var item game.Item
	switch b {
	case game.ButtonFeed:
		item = game.Meowmunch
	case game.ButtonPlay:
		item = game.Purrplay
	case game.ButtonClean:
		item = game.Furbath
	}
	msg := "Needs a " + string(item)
	w, _ := text.Measure(msg, face, 0)
	r := image.Rect(a.cursor.X+12, a.cursor.Y-26, a.cursor.X+24+int(w), a.cursor.Y-6)
	fillRect(dst, r, colPanel)
	strokeRect(dst, r, colPanelEdge)
	drawText(dst, msg, r.Min.X+6, r.Min.Y+4, colWarn)
}

func (a *App) drawStats(dst *ebiten.Image, snap game.Snapshot) {
	p := snap.Pet
	stats := []struct {
		label string
		value float64
	}{
		{"Hunger", float64(p.Hunger)},
		{"Happiness", float64(p.Happiness)},
		{"Energy", float64(p.Energy)},
		{"Cleanliness", float64(p.Cleanliness)},
	}
	const x, barX, barW, barH = 40, 140, 180, 14
	for i, s := range stats {
		y := 40 + i*36
		drawText(dst, s.label, x, y, colInk)
		vector.FillRect(dst, barX, float32(y), barW, barH, color.RGBA{R: 60, G: 60, B: 70, A: 120}, false)
		vector.FillRect(dst, barX, float32(y), float32(barW*s.value/game.StatMax), barH, statColours[i], false)
		drawText(dst, fmt.Sprintf("%3.0f", s.value), barX+barW+8, y, colInk)
	}

	y := 40 + len(stats)*36 + 8
	healthCol := color.RGBA{R: 46, G: 160, B: 67, A: 255}
	if snap.Mood == game.MoodSick {
		healthCol = colWarn
	}
	drawText(dst, "Health", x, y, colInk)
	vector.FillRect(dst, barX, float32(y), barW, barH, color.RGBA{R: 60, G: 60, B: 70, A: 120}, false)
	vector.FillRect(dst, barX, float32(y), float32(barW*p.Health/game.StatMax), barH, healthCol, false)
	drawText(dst, fmt.Sprintf("%5.1f", p.Health), barX+barW+8, y, colInk)
}

func (a *App) drawWallet(dst *ebiten.Image, snap game.Snapshot) {
	const x = 660
	drawText(dst, fmt.Sprintf("Money: $%d", snap.Economy.Money), x, 40, colMoney)
	drawText(dst, fmt.Sprintf("Spent: $%d", snap.Economy.TotalSpent), x, 60, colInk)
	for i, e := range snap.Catalog {
		drawText(dst, fmt.Sprintf("%s: %d", e.Item, snap.Economy.Inventory[e.Item]), x, 100+i*22, colInk)
	}
}

// drawCat is a flat vector cat; scale 1 is about 160px wide.
func (a *App) drawCat(dst *ebiten.Image, cx, cy float32, scale float32, t game.CatType, mood game.Mood) {
	coat := coatColours[game.CatOrange]
	if t.Valid() {
		coat = coatColours[t]
	}
	ink := color.RGBA{R: 30, G: 30, B: 30, A: 255}

	// Body and head.
	vector.FillCircle(dst, cx, cy+50*scale, 70*scale, coat, true)
	vector.FillCircle(dst, cx, cy-30*scale, 55*scale, coat, true)

	// Ears.
	var ears vector.Path
	ears.MoveTo(cx-50*scale, cy-55*scale)
	ears.LineTo(cx-35*scale, cy-105*scale)
	ears.LineTo(cx-10*scale, cy-75*scale)
	ears.Close()
	ears.MoveTo(cx+50*scale, cy-55*scale)
	ears.LineTo(cx+35*scale, cy-105*scale)
	ears.LineTo(cx+10*scale, cy-75*scale)
	ears.Close()
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(coat)
	vector.FillPath(dst, &ears, &vector.FillOptions{}, op)

	if t == game.CatCalico {
		vector.FillCircle(dst, cx-25*scale, cy-45*scale, 18*scale, coatColours[game.CatOrange], true)
		vector.FillCircle(dst, cx+30*scale, cy+40*scale, 28*scale, color.RGBA{R: 50, G: 45, B: 40, A: 255}, true)
	}

	// Eyes: closed lines when sick or sad.
	if mood == game.MoodSick || mood == game.MoodSad {
		vector.StrokeLine(dst, cx-28*scale, cy-35*scale, cx-12*scale, cy-35*scale, 2, ink, true)
		vector.StrokeLine(dst, cx+12*scale, cy-35*scale, cx+28*scale, cy-35*scale, 2, ink, true)
	} else {
		vector.FillCircle(dst, cx-20*scale, cy-35*scale, 6*scale, ink, true)
		vector.FillCircle(dst, cx+20*scale, cy-35*scale, 6*scale, ink, true)
	}
	vector.FillCircle(dst, cx, cy-20*scale, 4*scale, color.RGBA{R: 230, G: 120, B: 140, A: 255}, true)
	vector.StrokeCircle(dst, cx, cy-30*scale, 55*scale, 1.5, ink, true)
}

// --- Overlays ---

func (a *App) drawOverlayFrame(dst *ebiten.Image, title string) image.Rectangle {
	fillRect(dst, image.Rect(0, 0, game.ScreenWidth, game.ScreenHeight), colShade)
	o := game.OverlayRect()
	fillRect(dst, o, colPanel)
	strokeRect(dst, o, colPanelEdge)
	drawText(dst, upper.String(title), o.Min.X+24, o.Min.Y+26, colInk)
	a.drawButton(dst, game.BackRect(), "Back", true)
	return o
}

func (a *App) drawStore(dst *ebiten.Image, snap game.Snapshot) {
	o := a.drawOverlayFrame(dst, "Whiskermart")
	drawText(dst, fmt.Sprintf("Wallet: $%d", snap.Economy.Money), o.Min.X+24, o.Min.Y+48, colMoney)

	hover := -1
	for i, e := range snap.Catalog {
		r := game.StoreRowRect(i)
		afford := snap.Affordable[e.Item]
		if a.cursor.In(r) {
			hover = i
		}
		bg := color.RGBA{R: 232, G: 226, B: 214, A: 255}
		if a.cursor.In(r) && afford {
			bg = color.RGBA{R: 214, G: 230, B: 246, A: 255}
		}
		fillRect(dst, r, bg)
		strokeRect(dst, r, colPanelEdge)
		priceCol := colInk
		if !afford {
			priceCol = colWarn
		}
		drawText(dst, string(e.Item), r.Min.X+16, r.Min.Y+18, colInk)
		drawText(dst, fmt.Sprintf("$%d", e.Price), r.Max.X-200, r.Min.Y+18, priceCol)
		drawText(dst, fmt.Sprintf("owned %d", snap.Economy.Inventory[e.Item]), r.Max.X-110, r.Min.Y+18, colInk)
	}

	if hover >= 0 {
		msg, col := storeHint(snap.Affordable[snap.Catalog[hover].Item])
		w, _ := text.Measure(msg, face, 0)
		r := game.StoreRowRect(hover)
		tip := image.Rect(r.Max.X+10, r.Min.Y+12, r.Max.X+22+int(w), r.Min.Y+36)
		fillRect(dst, tip, colPanel)
		strokeRect(dst, tip, colPanelEdge)
		drawText(dst, msg, tip.Min.X+6, tip.Min.Y+5, col)
	}

	if snap.StoreMessage != "" {
		drawTextCentered(dst, snap.StoreMessage, image.Rect(o.Min.X, o.Max.Y-60, o.Max.X, o.Max.Y-30), colWarn)
	}
}

// storeHint is the hover text for a store row.
func storeHint(afford bool) (string, color.Color) {
	if afford {
		return "Click to buy", colMoney
	}
	return "Not enough money", colWarn
}

func (a *App) drawTaskboard(dst *ebiten.Image, snap game.Snapshot) {
	o := a.drawOverlayFrame(dst, "The Taskboard")

	if snap.Chore == game.ChoreMinigameActive && snap.ChoreSession != nil {
		done, total := snap.ChoreSession.Progress()
		drawText(dst, fmt.Sprintf("Trash: %d/%d Collected  (reward $%d)", done, total, snap.ChoreSession.Reward),
			o.Min.X+24, o.Min.Y+60, colInk)
		for _, tg := range snap.ChoreSession.Targets {
			if tg.Collected {
				continue
			}
			r := tg.Bounds()
			fillRect(dst, r, color.RGBA{R: 70, G: 60, B: 50, A: 255})
			vector.StrokeLine(dst, float32(r.Min.X+8), float32(r.Min.Y+4), float32(r.Max.X-8), float32(r.Min.Y+4), 2, color.RGBA{R: 200, G: 190, B: 60, A: 255}, false)
		}
		return
	}

	drawText(dst, "Earn money by doing chores", o.Min.X+24, o.Min.Y+60, colInk)
	for i, k := range game.ChoreKinds() {
		label := k.Title()
		if !k.Implemented() {
			label += " (coming soon)"
		}
		a.drawButton(dst, game.ChoreRowRect(i), label, k.Implemented())
	}
}
