// Package ui is the ebiten front-end. It never mutates the simulation
// directly: device input becomes game intents and drawing reads a snapshot.
package ui

import (
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Feline-Finances/internal/game"
)

const noticeFrames = 120

// App implements ebiten.Game around a game controller.
type App struct {
	game     *game.Game
	sounds   *Sounds
	activity *ActivityLog
	logger   *log.Logger
	frame    time.Duration

	cursor   image.Point
	chars    []rune
	frames   int
	showHelp bool

	notice       string
	noticeFrames int

	snap game.Snapshot
}

// NewApp wires the controller to the window. tps is the update rate, so each
// Update advances the simulation by 1/tps seconds. sounds may be nil.
func NewApp(g *game.Game, sounds *Sounds, tps int, logger *log.Logger) *App {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	a := &App{
		game:     g,
		sounds:   sounds,
		activity: NewActivityLog(),
		logger:   logger,
		frame:    time.Second / time.Duration(tps),
		showHelp: true,
	}
	a.snap = g.Snapshot()
	return a
}

func (a *App) Update() error {
	a.frames++
	a.cursor = image.Pt(ebiten.CursorPosition())

	intents, hk := a.pollInput(a.snap.Screen)
	a.game.Update(a.frame, intents)

	for _, c := range a.game.DrainCues() {
		a.sounds.Play(c)
	}
	a.activity.Follow(a.game.Journal())
	a.snap = a.game.Snapshot()

	if hk.copyStatus {
		if err := copyStatus(a.snap); err != nil {
			a.logger.Printf("warning: copy status: %v", err)
			a.flash("Could not copy status")
		} else {
			a.flash("Status copied to clipboard")
		}
	}
	if hk.toggleMute && a.sounds != nil {
		a.sounds.ToggleMute()
	}
	if hk.toggleHelp {
		a.showHelp = !a.showHelp
	}
	if a.noticeFrames > 0 {
		a.noticeFrames--
		if a.noticeFrames == 0 {
			a.notice = ""
		}
	}

	if a.game.Finished() {
		return ebiten.Termination
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	switch a.snap.Screen {
	case game.ScreenSetup:
		a.drawSetup(screen, a.snap.Setup)
	case game.ScreenPlay:
		a.drawPlay(screen, a.snap)
	}
}

func (a *App) Layout(_, _ int) (int, int) {
	return game.ScreenWidth, game.ScreenHeight
}

func (a *App) flash(msg string) {
	a.notice = msg
	a.noticeFrames = noticeFrames
}

// blink toggles twice a second for the text cursor.
func (a *App) blink() bool {
	return (a.frames/30)%2 == 0
}
