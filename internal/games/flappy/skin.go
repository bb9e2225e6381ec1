package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	EntityChar   = '█'
	OrbChar      = '●'
	EyeChar      = '•'
	PylonChar    = '█'
	PylonCapChar = '▀'
	CloudChar    = '░'
	MountainChar = '▒'
	PeakChar     = '▲'
)

// Skin draws snapshots of one variant onto a screen.
// The world is scaled to fill the screen below a one-row HUD.
type Skin struct {
	title    string
	cfg      config.SkinConfig
	entity   core.Color
	obstacle core.Color
	cloud    core.Color
	mountain core.Color
	scenery  *Scenery
	card     scorecard
}

// NewSkin creates a skin. The seed only drives decorative scenery.
func NewSkin(title string, cfg config.SkinConfig, world config.WorldConfig, seed int64) *Skin {
	return &Skin{
		title:    title,
		cfg:      cfg,
		entity:   core.ParseColor(cfg.Entity),
		obstacle: core.ParseColor(cfg.Obstacle),
		cloud:    core.ParseColor(cfg.Cloud),
		mountain: core.ParseColor(cfg.Mountain),
		scenery:  NewScenery(cfg.Clouds, world, seed),
	}
}

// Advance moves the scenery one tick.
func (k *Skin) Advance() {
	k.scenery.Advance()
}

// scorecard caches the HUD text until the score or best score changes.
type scorecard struct {
	score, high int
	text        string
	valid       bool
	builds      int
}

func (c *scorecard) get(title string, score, high int) string {
	if c.valid && c.score == score && c.high == high {
		return c.text
	}
	c.score, c.high = score, high
	c.text = fmt.Sprintf(" %s  Score: %d  High: %d ", title, score, high)
	c.valid = true
	c.builds++
	return c.text
}

// viewport maps world units to screen cells.
type viewport struct {
	world config.WorldConfig
	cols  int
	rows  int // Playfield rows, the HUD row excluded
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * float64(v.cols) / float64(v.world.Width)))
}

func (v viewport) row(y float64) int {
	return 1 + int(math.Floor(y*float64(v.rows)/float64(v.world.Height)))
}

// cellRect returns the clipped cell span [c0, c1) x [r0, r1) covering the
// world rectangle. A non-empty world rectangle always covers one cell.
func (v viewport) cellRect(left, top, right, bottom float64) (c0, r0, c1, r1 int) {
	c0, c1 = v.col(left), int(math.Ceil(right*float64(v.cols)/float64(v.world.Width)))
	r0, r1 = v.row(top), 1+int(math.Ceil(bottom*float64(v.rows)/float64(v.world.Height)))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	return core.Max(c0, 0), core.Max(r0, 1), core.Min(c1, v.cols), core.Min(r1, v.rows+1)
}

func (v viewport) fill(dst *core.Screen, left, top, right, bottom float64, r rune, c core.Color) {
	c0, r0, c1, r1 := v.cellRect(left, top, right, bottom)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			dst.SetColored(x, y, r, c)
		}
	}
}

// Render draws the snapshot.
func (k *Skin) Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() < 2 || snap.World.Width <= 0 || snap.World.Height <= 0 {
		return
	}
	v := viewport{world: snap.World, cols: dst.Width(), rows: dst.Height() - 1}

	if k.cfg.Mountains {
		k.drawMountains(dst, v)
	}
	for _, c := range k.scenery.Clouds() {
		v.fill(dst, float64(c.X), float64(c.Y), float64(c.X+CloudWidth), float64(c.Y+CloudHeight), CloudChar, k.cloud)
	}
	for _, o := range snap.Obstacles {
		k.drawObstacle(dst, v, o)
	}
	k.drawEntity(dst, v, snap.Entity)

	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColored(0, 0, k.card.get(k.title, snap.Score, snap.HighScore), core.ColorBrightWhite)

	if snap.GameOver() {
		k.drawGameOver(dst, snap)
	}
}

func (k *Skin) drawMountains(dst *core.Screen, v viewport) {
	for col := 0; col < v.cols; col++ {
		x := int(float64(col) * float64(v.world.Width) / float64(v.cols))
		top := v.row(float64(v.world.Height - MountainHeight(x)))
		for y := top; y <= v.rows; y++ {
			r := MountainChar
			if y == top {
				r = PeakChar
			}
			dst.SetColored(col, y, r, k.mountain)
		}
	}
}

func (k *Skin) drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	left, right := float64(o.X), float64(o.Right())
	upper, lower := float64(o.UpperEdge()), float64(o.LowerEdge())
	height := float64(v.world.Height)

	if upper > 0 {
		v.fill(dst, left, 0, right, upper, PylonChar, k.obstacle)
		// Cap on the last row above the gap
		c0, _, c1, r1 := v.cellRect(left, 0, right, upper)
		if r1-1 >= 1 {
			for x := c0; x < c1; x++ {
				dst.SetColored(x, r1-1, PylonCapChar, k.obstacle)
			}
		}
	}
	if lower < height {
		v.fill(dst, left, lower, right, height, PylonChar, k.obstacle)
	}
}

func (k *Skin) drawEntity(dst *core.Screen, v viewport, e EntityView) {
	x := float64(e.X)
	if e.Shape == ShapeBox {
		v.fill(dst, x, e.Y, x+e.Size, e.Y+e.Size, EntityChar, k.entity)
		if k.cfg.Eye {
			_, r0, c1, _ := v.cellRect(x, e.Y, x+e.Size, e.Y+e.Size)
			dst.SetColored(c1-1, r0, EyeChar, core.ColorBrightWhite)
		}
		return
	}

	// Circle: cells whose center lies inside the radius
	c0, r0, c1, r1 := v.cellRect(x-e.Size, e.Y-e.Size, x+e.Size, e.Y+e.Size)
	drawn := false
	for row := r0; row < r1; row++ {
		wy := (float64(row-1) + 0.5) * float64(v.world.Height) / float64(v.rows)
		for col := c0; col < c1; col++ {
			wx := (float64(col) + 0.5) * float64(v.world.Width) / float64(v.cols)
			if (wx-x)*(wx-x)+(wy-e.Y)*(wy-e.Y) <= e.Size*e.Size {
				dst.SetColored(col, row, OrbChar, k.entity)
				drawn = true
			}
		}
	}
	if !drawn {
		dst.SetColored(v.col(x), v.row(e.Y), OrbChar, k.entity)
	}
	if k.cfg.Eye {
		dst.SetColored(v.col(x+e.Size/2), v.row(e.Y-e.Size/2), EyeChar, core.ColorBrightWhite)
	}
}

// drawGameOver draws the Game Over card in the center of the screen.
func (k *Skin) drawGameOver(dst *core.Screen, snap Snapshot) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d   High: %d", snap.Score, snap.HighScore),
	}
	if snap.NewHighScore {
		lines = append(lines, "NEW HIGH SCORE!")
	}
	lines = append(lines, "Press R to restart")

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		c := core.ColorBrightWhite
		switch {
		case i == 0:
			c = core.ColorRed
		case l == "NEW HIGH SCORE!":
			c = core.ColorYellow
		}
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, c)
	}
}
