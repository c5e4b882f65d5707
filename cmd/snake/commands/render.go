package commands

import (
	"fmt"
	"math/rand"

	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	headColor    = termbox.ColorYellow
	bestColor    = termbox.ColorYellow | termbox.AttrBold
	alertColor   = termbox.ColorRed | termbox.AttrBold
)

var foods = []rune{'🍒', '🍍', '🍑', '🍇', '🍏', '🍌', '🍫', '🍭', '🍕', '🍩', '🍗', '🍖', '🍬', '🍤', '🍪'}

// termboxRenderer draws snapshots to the terminal.
type termboxRenderer struct {
	layout layout
	holder *snapshotHolder

	foodAt   rules.Point
	foodRune rune
}

func (r *termboxRenderer) Render(s controller.Snapshot) error {
	r.holder.store(s)

	if err := termbox.Clear(defaultColor, bgColor); err != nil {
		return errors.Wrap(err, "unable to clear terminal")
	}

	r.renderHUD(s)
	r.renderBoard(s.GridWidth, s.GridHeight)
	r.renderFood(s)
	r.renderSnake(s)

	switch s.Phase {
	case controller.PhaseReady:
		r.renderOverlay(s, defaultColor, "SNAKE", "", "Press SPACE to start")
	case controller.PhasePaused:
		r.renderOverlay(s, defaultColor, "PAUSED", "", "Press P to resume")
	case controller.PhaseGameOver:
		r.renderOverlay(s, alertColor,
			"GAME OVER",
			fmt.Sprintf("Score: %d", s.Score),
			fmt.Sprintf("Best: %d", s.HighScore),
			"",
			"SPACE to play again, ESC to quit",
		)
	}

	return errors.Wrap(termbox.Flush(), "unable to flush terminal")
}

func (r *termboxRenderer) renderHUD(s controller.Snapshot) {
	x := tbprint(1, 0, defaultColor, defaultColor, fmt.Sprintf("Score: %d", s.Score))

	best := defaultColor
	if s.NewBest() {
		best = bestColor
	}
	x = tbprint(x+3, 0, best, defaultColor, fmt.Sprintf("Best: %d", s.HighScore))
	tbprint(x+3, 0, defaultColor, defaultColor, fmt.Sprintf("Speed: %d", s.Speed))

	if r.layout.hudRows > 1 {
		tbprint(1, 1, defaultColor, defaultColor, "arrows/WASD move  P pause  ESC quit")
	}
}

func (r *termboxRenderer) renderBoard(gridWidth, gridHeight int) {
	left, top, right, bottom := r.layout.board(gridWidth, gridHeight)
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left, i, '│', defaultColor, bgColor)
		termbox.SetCell(right, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(right, top, '┐', defaultColor, bgColor)
	termbox.SetCell(right, bottom, '┘', defaultColor, bgColor)

	fill(left+1, top, right-left-1, 1, termbox.Cell{Ch: '─'})
	fill(left+1, bottom, right-left-1, 1, termbox.Cell{Ch: '─'})
}

func (r *termboxRenderer) renderSnake(s controller.Snapshot) {
	// draw the tail first so the head stays on top after a self collision
	for i := len(s.Snake) - 1; i >= 0; i-- {
		p := s.Snake[i]
		if !p.In(s.GridWidth, s.GridHeight) {
			continue
		}
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		x, y := r.layout.cell(p)
		fill(x, y, r.layout.cellWidth, r.layout.cellHeight, termbox.Cell{Ch: ' ', Fg: color, Bg: color})
	}
}

func (r *termboxRenderer) renderFood(s controller.Snapshot) {
	if !s.Food.In(s.GridWidth, s.GridHeight) {
		return
	}
	x, y := r.layout.cell(s.Food)
	ch := r.foodEmoji(s.Food)
	if runewidth.RuneWidth(ch) > r.layout.cellWidth {
		termbox.SetCell(x, y, '*', termbox.ColorRed, bgColor)
		return
	}
	termbox.SetCell(x, y, ch, defaultColor, bgColor)
}

// foodEmoji picks a new emoji whenever the food moves.
func (r *termboxRenderer) foodEmoji(p rules.Point) rune {
	if r.foodRune == 0 || p != r.foodAt {
		r.foodAt = p
		r.foodRune = foods[rand.Intn(len(foods))]
	}
	return r.foodRune
}

func (r *termboxRenderer) renderOverlay(s controller.Snapshot, titleColor termbox.Attribute, lines ...string) {
	left, top, right, bottom := r.layout.board(s.GridWidth, s.GridHeight)
	midX := (left + right) / 2
	y := (top+bottom)/2 - len(lines)/2
	for i, line := range lines {
		fg := defaultColor
		if i == 0 {
			fg = titleColor
		}
		tbprint(midX-runewidth.StringWidth(line)/2, y+i, fg, defaultColor, line)
	}
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

// tbprint writes msg starting at x and returns the column after it.
func tbprint(x, y int, fg, bg termbox.Attribute, msg string) int {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
	return x
}
