package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Feline-Finances/internal/game"
)

// hotkeys are front-end only and never reach the controller.
type hotkeys struct {
	copyStatus bool
	toggleMute bool
	toggleHelp bool
}

// pollInput turns this frame's device state into intents. Keys are edge
// triggered so a held key is one intent.
func (a *App) pollInput(screen game.Screen) ([]game.Intent, hotkeys) {
	var intents []game.Intent
	var hk hotkeys

	if ebiten.IsWindowBeingClosed() {
		return append(intents, game.Quit()), hk
	}

	switch screen {
	case game.ScreenSetup:
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
			intents = append(intents, game.SelectField(-1))
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyTab) {
			intents = append(intents, game.SelectField(+1))
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
			intents = append(intents, game.AdjustField(-1))
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
			intents = append(intents, game.AdjustField(+1))
		}
		a.chars = ebiten.AppendInputChars(a.chars[:0])
		for _, r := range a.chars {
			intents = append(intents, game.TextInput(r))
		}
		if repeating(ebiten.KeyBackspace) {
			intents = append(intents, game.Backspace())
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
			intents = append(intents, game.Confirm())
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			intents = append(intents, game.Quit())
		}

	case game.ScreenPlay:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			intents = append(intents, game.Cancel())
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			intents = append(intents, game.ClickAt(x, y))
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) && ebiten.IsKeyPressed(ebiten.KeyControl) {
			intents = append(intents, game.Quit())
		}
		hk.copyStatus = inpututil.IsKeyJustPressed(ebiten.KeyC)
		hk.toggleMute = inpututil.IsKeyJustPressed(ebiten.KeyM)
		hk.toggleHelp = inpututil.IsKeyJustPressed(ebiten.KeyH)
	}
	return intents, hk
}

// repeating fires on press and then every few frames while held.
func repeating(k ebiten.Key) bool {
	const delay, interval = 24, 4
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}
