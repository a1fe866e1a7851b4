// Command mascot is a reference render loop for the gesture engine: an
// ebiten window with a vector-drawn mascot that translates, scales, rotates
// and glows according to the combined transform Tick produces each frame.
package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"golang.org/x/image/font/basicfont"

	emotive "github.com/joshtol/emotive-engine"
	"github.com/joshtol/emotive-engine/transform"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

// MascotData is the single rendered entity: a rest position plus the
// transform computed for the current frame.
type MascotData struct {
	X, Y    float64
	Radius  float64
	Current transform.Transform
}

var Mascot = donburi.NewComponentType[MascotData]()

type binding struct {
	key     ebiten.Key
	label   string
	gesture string
}

var bindings = []binding{
	{ebiten.Key1, "1", "bounce"},
	{ebiten.Key2, "2", "shake"},
	{ebiten.Key3, "3", "jump"},
	{ebiten.Key4, "4", "flash"},
	{ebiten.Key5, "5", "breathe"},
	{ebiten.Key6, "6", "wave"},
	{ebiten.Key7, "7", "orbit"},
	{ebiten.Key8, "8", "morph"},
	{ebiten.Key9, "9", "settle"},
	{ebiten.Key0, "0", "point"},
	{ebiten.KeyQ, "Q", "spin"},
	{ebiten.KeyW, "W", "runningMan"},
	{ebiten.KeyE, "E", "charleston"},
	{ebiten.KeyZ, "Z", "celebrate"},
}

type Game struct {
	world  donburi.World
	engine *emotive.Engine
}

func NewGame() *Game {
	engine, err := emotive.New(emotive.Options{ScaleFactor: 1.2})
	if err != nil {
		log.Fatalf("engine init: %v", err)
	}

	world := donburi.NewWorld()
	entry := world.Entry(world.Create(Mascot))
	Mascot.SetValue(entry, MascotData{
		X:      screenWidth / 2,
		Y:      screenHeight/2 + 40,
		Radius: 40,
	})

	// Idle breathing from the first frame, like the mascot is alive
	// before anyone presses a key.
	if _, err := engine.Start("breathe", nil); err != nil {
		log.Printf("[mascot] start breathe: %v", err)
	}

	return &Game{world: world, engine: engine}
}

func (g *Game) Update() error {
	g.handleInput()

	tf := g.engine.Tick(time.Now())
	Mascot.Each(g.world, func(e *donburi.Entry) {
		m := Mascot.Get(e)
		m.Current = tf
	})
	return nil
}

func (g *Game) handleInput() {
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			if _, err := g.engine.Start(b.gesture, nil); err != nil {
				log.Printf("[mascot] %v", err)
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.engine.Coordinator().Paused() {
			g.engine.Resume()
		} else {
			g.engine.Pause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		// Chained showcase: each starts when the previous one finishes.
		for _, name := range []string{"jump", "spin", "flash"} {
			if err := g.engine.Chain(name, nil); err != nil {
				log.Printf("[mascot] chain: %v", err)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.engine.Reset()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 16, G: 18, B: 28, A: 255})

	Mascot.Each(g.world, func(e *donburi.Entry) {
		drawMascot(screen, Mascot.Get(e))
	})

	g.drawHUD(screen)
}

func drawMascot(screen *ebiten.Image, m *MascotData) {
	tf := m.Current
	cx := float32(m.X + tf.OffsetX)
	// OffsetY is a lift; screen Y grows downward.
	cy := float32(m.Y - tf.OffsetY)
	radius := float32(m.Radius * tf.Scale)

	// Glow halo: translucent ring scaled by the glow level.
	if tf.Glow > 0 {
		glow := tf.Glow
		if glow > 1 {
			glow = 1
		}
		halo := color.RGBA{R: 255, G: 214, B: 90, A: uint8(90 * glow)}
		vector.DrawFilledCircle(screen, cx, cy, radius*(1.15+0.35*float32(glow)), halo, true)
	}

	body := color.RGBA{R: 120, G: 190, B: 255, A: 255}
	vector.DrawFilledCircle(screen, cx, cy, radius, body, true)

	// A "nose" dot makes rotation visible on a circle.
	nx := cx + radius*0.6*float32(math.Sin(tf.Rotation))
	ny := cy - radius*0.6*float32(math.Cos(tf.Rotation))
	vector.DrawFilledCircle(screen, nx, ny, radius*0.15, color.RGBA{R: 20, G: 40, B: 80, A: 255}, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	white := color.RGBA{R: 230, G: 230, B: 230, A: 255}
	dim := color.RGBA{R: 140, G: 140, B: 150, A: 255}

	y := 20
	for _, b := range bindings {
		label := fmt.Sprintf("%s %s", b.label, b.gesture)
		clr := dim
		if g.engine.IsActive(b.gesture) {
			clr = white
		}
		text.Draw(screen, label, face, 12, y, clr)
		y += 14
	}
	text.Draw(screen, "C chain  SPACE pause  BKSP reset", face, 12, screenHeight-12, dim)

	if g.engine.Coordinator().Paused() {
		text.Draw(screen, "PAUSED", face, screenWidth-64, 20, white)
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("emotive mascot")

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
