// Package app runs the viewer: window, input, frame loop and the optional
// remote bridge.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/headset-viewer/internal/config"
	"github.com/Faultbox/headset-viewer/internal/engine/camera"
	"github.com/Faultbox/headset-viewer/internal/engine/input"
	"github.com/Faultbox/headset-viewer/internal/engine/lighting"
	"github.com/Faultbox/headset-viewer/internal/engine/picking"
	"github.com/Faultbox/headset-viewer/internal/engine/renderer"
	"github.com/Faultbox/headset-viewer/internal/engine/window"
	"github.com/Faultbox/headset-viewer/internal/logger"
	"github.com/Faultbox/headset-viewer/internal/remote"
	"github.com/Faultbox/headset-viewer/internal/scene"
	"github.com/Faultbox/headset-viewer/internal/theme"
	"github.com/Faultbox/headset-viewer/internal/viewer"
	"github.com/Faultbox/headset-viewer/pkg/math"
)

// maxFrameTime caps dt so a stalled frame does not skip whole animations.
const maxFrameTime = 0.1

// App is the viewer application instance.
type App struct {
	config  *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	scene    *scene.Scene
	camera   *camera.Camera
	controls *camera.OrbitControls
	themes   *theme.Catalog
	viewer   *viewer.Viewer

	remote       *remote.Server
	cancelRemote context.CancelFunc

	dragging bool
}

// New creates the window, renderer and viewer state.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
	}
	a.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a.themes = theme.Builtin()
	if cfg.Theme.ThemesFile != "" {
		if err := a.themes.LoadFile(cfg.Theme.ThemesFile); err != nil {
			return nil, fmt.Errorf("loading themes: %w", err)
		}
	}

	// Window first: it creates the OpenGL context the renderer needs
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	background, err := scene.ParseColor(cfg.Window.Background)
	if err != nil {
		a.log.Warn("invalid background colour, using white", zap.String("background", cfg.Window.Background), zap.Error(err))
		background = 0xffffff
	}

	drawW, drawH := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      drawW,
		Height:     drawH,
		Background: background,
		Lights:     lighting.StudioRig(),
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.scene = scene.BuildHeadset()
	a.setupCamera()

	a.viewer = viewer.New(a.scene, a.camera, a.controls, a.viewerOptions())
	a.viewer.OnThemeSelect(cfg.Theme.Default)

	if cfg.Remote.Enabled {
		a.startRemote()
	}

	a.log.Info("viewer initialized", zap.Int("parts", len(a.scene.Parts())))
	return a, nil
}

func (a *App) setupCamera() {
	c := a.config.Camera
	winW, winH := a.window.GetSize()

	a.camera = camera.NewCamera(c.FOV, 1, c.Near, c.Far)
	a.camera.SetViewport(winW, winH)
	a.camera.Position = vec(c.StartPosition)

	a.controls = camera.NewOrbitControls(a.camera)
	a.controls.Target = vec(c.DefaultTarget)
	a.controls.DampingFactor = c.DampingFactor
	a.controls.AutoRotateSpeed = c.AutoRotateSpeed
	a.controls.RotateSensitivity = c.RotateSpeed
	a.controls.ZoomSensitivity = c.ZoomSpeed
	a.controls.MinDistance = c.MinDistance
	a.controls.MaxDistance = c.MaxDistance
	a.controls.Sync()
}

func (a *App) viewerOptions() viewer.Options {
	c, in := a.config.Camera, a.config.Interaction

	opts := viewer.DefaultOptions()
	opts.Logger = logger.Named("viewer")
	opts.Themes = a.themes
	opts.Viewport = func() picking.Viewport {
		w, h := a.window.GetSize()
		return picking.Viewport{Width: w, Height: h}
	}
	opts.DragThreshold = in.DragThreshold
	opts.FocusDuration = in.FocusDuration
	opts.ReturnDuration = in.ReturnDuration
	opts.ExplodeDuration = in.ExplodeDuration
	opts.IdleReturnDelay = in.IdleReturnDelay
	opts.AutoRotateSuspendDistance = in.AutoRotateSuspendDistance
	opts.ClearRestOnCollapse = in.ClearRestOnCollapse
	opts.FlashDuration = in.ClickFlash
	opts.FloatAmplitude = in.FloatAmplitude
	opts.FloatSpeed = in.FloatSpeed
	opts.DefaultTarget = vec(c.DefaultTarget)
	opts.OrbitRadius = c.OrbitRadius
	opts.OrbitHeight = c.OrbitHeight
	return opts
}

func (a *App) startRemote() {
	a.remote = remote.NewServer(logger.Named("remote"))

	ctx, cancel := context.WithCancel(context.Background())
	a.cancelRemote = cancel
	addr := a.config.Remote.Listen
	go func() {
		if err := a.remote.Serve(ctx, addr); err != nil {
			a.log.Error("remote bridge stopped", zap.Error(err))
		}
	}()
}

// Run starts the frame loop and returns when the window closes.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := min(now.Sub(lastTime).Seconds(), maxFrameTime)
		lastTime = now

		// 1. Input and queued remote commands, before the tick
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}
		if a.remote != nil {
			a.remote.Drain(a.viewer)
		}

		// 2. Timers, tweens and controls
		a.viewer.Tick(dt)

		// 3. Render and present
		a.renderer.Draw(a.scene, a.camera, a.viewer.Focused())
		a.window.SwapBuffers()
		a.updateTitle()

		if a.remote != nil {
			a.remote.Publish(a.viewer.Snapshot())
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if logger.Enabled(zapcore.DebugLevel) {
				a.log.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		drawW, drawH := a.window.DrawableSize()
		a.renderer.Resize(drawW, drawH)
		a.camera.SetViewport(e.Width, e.Height)

	case input.EventMouseMove:
		a.viewer.OnPointerMove(float32(e.MouseX), float32(e.MouseY))
		if a.dragging {
			a.viewer.OnPointerDrag(float32(e.DeltaX), float32(e.DeltaY))
		}

	case input.EventMouseDown:
		if e.Button != sdl.BUTTON_LEFT {
			return
		}
		a.dragging = true
		a.viewer.OnPointerDown(float32(e.MouseX), float32(e.MouseY))

	case input.EventMouseUp:
		if e.Button != sdl.BUTTON_LEFT || !a.dragging {
			return
		}
		a.dragging = false
		a.viewer.OnPointerUp()
		a.viewer.OnClick(float32(e.MouseX), float32(e.MouseY))

	case input.EventMouseWheel:
		a.viewer.OnWheel(e.Wheel)

	case input.EventKeyDown:
		if !e.Repeat {
			a.handleKey(e.Key)
		}
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	first, last := sdl.Scancode(sdl.SCANCODE_1), sdl.Scancode(sdl.SCANCODE_9)

	switch key {
	case sdl.Scancode(sdl.SCANCODE_ESCAPE):
		a.running = false
	case sdl.Scancode(sdl.SCANCODE_E):
		a.viewer.OnToggleExploded()
	case sdl.Scancode(sdl.SCANCODE_R):
		a.viewer.OnResetView()
	default:
		if key >= first && key <= last {
			if t, ok := a.themes.At(int(key - first)); ok {
				a.viewer.OnThemeSelect(t.ID)
			}
		}
	}
}

// updateTitle shows the hovered part's name in the window title.
func (a *App) updateTitle() {
	title := a.config.Window.Title
	if name, ok := a.viewer.Tooltip(); ok {
		title += " - " + name
	}
	a.window.SetTitle(title)
}

// Close releases the bridge, renderer and window.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.cancelRemote != nil {
		a.cancelRemote()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func vec(v config.Vec3) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
