package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/akmonengine/arcball"
	"github.com/akmonengine/arcball/actor"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	screenWidth  = 800
	screenHeight = 600

	cameraDistance = 4.0
	cubeScale      = 160.0
)

var cubeVertices = [8]mgl64.Vec3{
	{-1, -1, -1},
	{1, -1, -1},
	{1, 1, -1},
	{-1, 1, -1},
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{-1, 1, 1},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Game drives an arcball controller from ebiten's mouse and keyboard input
// and renders the target node as a wireframe cube.
type Game struct {
	node *actor.Node
	ctrl *arcball.Controller

	lastX, lastY float64
	velX, velY   float64
	frame        int
}

func NewGame() *Game {
	node := actor.NewNode("cube")
	g := &Game{node: node}

	// Ticks are driven from Update: 60 TPS, one controller tick every other
	// frame matches the 30 Hz reference rate.
	g.ctrl = arcball.New(node,
		arcball.WithViewport(screenWidth, screenHeight),
		arcball.WithManualTick(),
	)
	g.ctrl.Events.Subscribe(arcball.MOMENTUM_START, func(event arcball.Event) {
		e := event.(arcball.MomentumStartEvent)
		fmt.Printf("momentum: axis=%v angle=%.4f\n", e.Axis, e.Angle)
	})

	return g
}

func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.ctrl.BeginDrag(mgl64.Vec2{fx, fy})
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.ctrl.UpdateDrag(mgl64.Vec2{fx, fy})
		g.velX = (fx - g.lastX) * float64(ebiten.TPS())
		g.velY = (fy - g.lastY) * float64(ebiten.TPS())
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.ctrl.EndDrag(mgl64.Vec2{g.velX, g.velY}, mgl64.Vec2{fx, fy})
		g.velX, g.velY = 0, 0
	}
	g.lastX, g.lastY = fx, fy

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.ctrl.RotateCounterclockwise(arcball.DEFAULT_YAW_STEP)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.ctrl.RotateClockwise(arcball.DEFAULT_YAW_STEP)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.ctrl.PitchUp(arcball.DEFAULT_PITCH_STEP)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.ctrl.PitchDown(arcball.DEFAULT_PITCH_STEP)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.ctrl.Roll(arcball.DEFAULT_ROLL_STEP)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.ResetOrientation(0.5)
	}

	g.frame++
	if g.frame%2 == 0 {
		g.ctrl.Tick()
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	var projected [8]mgl64.Vec2
	for i, v := range cubeVertices {
		w := g.node.Transform.Apply(v)
		s := cameraDistance / (cameraDistance - w.Z()/2)
		projected[i] = mgl64.Vec2{
			screenWidth/2 + w.X()*s*cubeScale/2,
			screenHeight/2 - w.Y()*s*cubeScale/2,
		}
	}

	for _, edge := range cubeEdges {
		a, b := projected[edge[0]], projected[edge[1]]
		vector.StrokeLine(screen,
			float32(a.X()), float32(a.Y()),
			float32(b.X()), float32(b.Y()),
			2, color.RGBA{R: 0x40, G: 0xc0, B: 0xff, A: 0xff}, true)
	}

	ex, ey, ez := g.ctrl.RotationEuler()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"drag to rotate, arrows/Z nudge, R resets\neuler: %.1f %.1f %.1f  active: %v",
		ex, ey, ez, g.ctrl.Dragging()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("arcball spincube")

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
