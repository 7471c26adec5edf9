package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"openstudio/internal/camera"
	"openstudio/internal/engine"
	"openstudio/internal/physics"
	"openstudio/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrUnknownRegion is returned by FocusRegion for names the city does not have.
var ErrUnknownRegion = errors.New("unknown region")

const (
	lightIntensity float32 = 1
	lightRange     float32 = 50
	cubeSaturation float32 = 0.6
	cubeLightness  float32 = 0.6
)

type Options struct {
	Camera         camera.Options
	Highlight      rl.Color
	SpinRate       float32
	SpinTimeScaled bool
	Rand           *rand.Rand
}

func DefaultOptions() Options {
	return Options{
		Camera:    camera.DefaultOptions(),
		Highlight: DefaultHighlightColor,
		SpinRate:  DefaultSpinRate,
	}
}

// Editor is the command surface of the viewport. Every command runs under
// one lock so a render pass never sees a half applied edit. Snapshot
// listeners run while the lock is held and must not call back into the Editor.
type Editor struct {
	mu        sync.Mutex
	scene     *engine.Scene
	regions   world.Regions
	camera    *camera.OrbitCamera
	selection *Selection
	mutator   *Mutator
	spinner   *Spinner
	rng       *rand.Rand
	log       *slog.Logger

	gizmo   gizmoState
	hovered engine.ID
	// reveal is the newest entity the outliner has not scrolled to yet.
	reveal engine.ID

	ui inspectorState
}

func NewEditor(scene *engine.Scene, regions world.Regions, opts Options) *Editor {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	selection := NewSelection(scene, opts.Highlight)
	e := &Editor{
		scene:     scene,
		regions:   regions,
		camera:    camera.New(opts.Camera),
		selection: selection,
		mutator:   NewMutator(selection),
		spinner:   NewSpinner(selection, opts.SpinRate, opts.SpinTimeScaled),
		rng:       rng,
		log:       slog.With("component", "editor"),
		gizmo:     gizmoState{hoveredAxisID: -1},
	}
	// Add runs under the editor lock, so reveal needs no extra guard.
	scene.OnAdded.AddListener(func(ent *engine.Entity) {
		e.reveal = ent.ID
	})
	return e
}

// PointerDown selects whatever is under the pointer, or clears the
// selection on a miss. ndc is the pointer in normalized device coordinates.
func (e *Editor) PointerDown(ndc rl.Vector2) engine.ID {
	e.mu.Lock()
	defer e.mu.Unlock()
	id, _ := physics.Pick(ndc, e.camera, e.scene)
	e.selection.Select(id)
	return e.selection.Current()
}

// Hover records the selectable entity under the pointer without selecting it.
// The debug overlay outlines it.
func (e *Editor) Hover(ndc rl.Vector2) engine.ID {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hovered, _ = physics.Pick(ndc, e.camera, e.scene)
	return e.hovered
}

// Select selects id directly, as the outliner does.
func (e *Editor) Select(id engine.ID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selection.Select(id)
}

func (e *Editor) Deselect() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selection.Deselect()
}

func (e *Editor) Resize(w, h int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.camera.Resize(w, h)
}

func (e *Editor) Orbit(delta rl.Vector2) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.camera.Orbit(delta)
}

func (e *Editor) Pan(delta rl.Vector2) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.camera.Pan(delta)
}

func (e *Editor) Zoom(delta float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.camera.Zoom(delta)
}

// AddCube drops a randomly colored unit cube near the origin and selects it.
func (e *Editor) AddCube() engine.ID {
	e.mu.Lock()
	defer e.mu.Unlock()

	cube := engine.NewEntity(engine.KindCube, hslColor(e.rng.Float32()*360, cubeSaturation, cubeLightness))
	cube.Name = "Cube"
	cube.Transform.Position = rl.Vector3{
		X: (e.rng.Float32() - 0.5) * 6,
		Y: 0.5 + e.rng.Float32()*2,
		Z: (e.rng.Float32() - 0.5) * 6,
	}
	id := e.scene.Add(cube)
	e.log.Info("cube added", "id", id, "color", engine.HexColor(cube.BaseColor))
	e.selection.Select(id)
	return id
}

// AddLight places a point light where the camera is. Lights cannot be selected.
func (e *Editor) AddLight() engine.ID {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.scene.Add(engine.NewLight(e.camera.Position, lightIntensity, lightRange))
	e.log.Info("light added", "id", id, "position", e.camera.Position)
	return id
}

// ToggleAnimation flips the spin flag and returns the new value.
func (e *Editor) ToggleAnimation() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	on := e.spinner.Toggle()
	e.log.Debug("spin toggled", "on", on)
	return on
}

// FocusRegion cuts the camera to the named region.
func (e *Editor) FocusRegion(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.regions.Find(name)
	if !ok {
		return fmt.Errorf("focus %q: %w", name, ErrUnknownRegion)
	}
	e.camera.Focus(r.Center)
	e.log.Debug("focused", "region", name)
	return nil
}

// FocusEntity cuts the camera to an entity. It reports false for unknown IDs.
func (e *Editor) FocusEntity(id engine.ID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent := e.scene.Find(id)
	if ent == nil {
		return false
	}
	e.camera.Focus(ent.Transform.Position)
	return true
}

// ApplyEdit forwards an inspector edit to the selected entity.
func (e *Editor) ApplyEdit(edits Edits) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mutator.Apply(edits)
}

// Update advances time dependent state by dt seconds. Called once per frame.
func (e *Editor) Update(dt float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spinner.Tick(dt)
}

// Snapshot returns the inspector view of the selection.
func (e *Editor) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selection.Snapshot()
}

// Subscribe registers fn for every snapshot change.
func (e *Editor) Subscribe(fn func(Snapshot)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selection.OnChanged.AddListener(fn)
}

func (e *Editor) Spinning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.spinner.Spinning()
}

func (e *Editor) CameraState() camera.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.camera.State()
}

func (e *Editor) Regions() world.Regions {
	return e.regions
}

// View runs fn with the camera and the entity list under the editor lock.
// fn must not keep the entities after it returns.
func (e *Editor) View(fn func(cam rl.Camera3D, state camera.State, entities []*engine.Entity)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.camera.GetRaylibCamera(), e.camera.State(), e.scene.Entities())
}

// Close stops the spin animation and drops the selection. Called when the viewport goes away.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spinner.Reset()
	e.gizmo.dragging = false
	e.selection.Deselect()
	e.log.Debug("editor closed", "listeners", e.selection.OnChanged.GetListenerCount())
	e.selection.OnChanged.RemoveAllListeners()
}

// hslColor converts hue in degrees with saturation and lightness in [0, 1].
func hslColor(hue, saturation, lightness float32) rl.Color {
	v := lightness + saturation*min(lightness, 1-lightness)
	s := float32(0)
	if v > 0 {
		s = 2 * (1 - lightness/v)
	}
	return rl.ColorFromHSV(hue, s, v)
}
