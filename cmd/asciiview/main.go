// asciiview - Terminal 3D Model Viewer
// Renders OBJ and GLB files as spinning shaded ASCII art.
//
// Controls:
//
//	Space       - Apply a random spin impulse
//	+/-         - Adjust base spin rate
//	P           - Pause/resume spinning
//	R           - Reset spin
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"go.uber.org/zap"

	"github.com/nelsonogbuigwe/ascii-renderer/internal/config"
	"github.com/nelsonogbuigwe/ascii-renderer/internal/logger"
	"github.com/nelsonogbuigwe/ascii-renderer/pkg/math3d"
	"github.com/nelsonogbuigwe/ascii-renderer/pkg/models"
	"github.com/nelsonogbuigwe/ascii-renderer/pkg/render"
)

var (
	targetFPS  = flag.Int("fps", 30, "Target FPS")
	rampFlag   = flag.String("ramp", "", "Glyph ramp, darkest to brightest (default \" .:-=+*#%@\")")
	configPath = flag.String("config", "", "Path to YAML config file")
	workers    = flag.Int("workers", 0, "Rasterizer goroutines (0 = all CPUs)")
	spinRate   = flag.Float64("spin", 0.9, "Base spin rate in radians per second")
	logLevel   = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFile    = flag.String("log-file", "", "Log file path (logging disabled when empty)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "asciiview - Terminal 3D Model Viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: asciiview [options] <model.obj|model.glb>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin impulse\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Adjust spin rate\n")
		fmt.Fprintf(os.Stderr, "  P           - Pause/resume\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset spin\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	modelPath := flag.Arg(0)

	if err := run(modelPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// SpinState tracks the Y rotation: a steady base rate plus impulse velocity
// decaying through a harmonica spring. The angle is absolute and vertices
// are recomputed from the unrotated mesh every frame, so long sessions
// accumulate no drift.
type SpinState struct {
	Angle    float64 // Absolute rotation, radians
	Rate     float64 // Base radians per second
	Velocity float64 // Impulse velocity, radians per frame
	Paused   bool

	spring   harmonica.Spring
	velAccel float64
	baseRate float64
}

// NewSpinState creates spin state with a critically damped spring so
// impulses decay without overshoot.
func NewSpinState(fps int, rate float64) *SpinState {
	return &SpinState{
		Rate:     rate,
		baseRate: rate,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update advances the angle by one frame of dt seconds.
func (s *SpinState) Update(dt float64) {
	if !s.Paused {
		s.Angle += s.Rate * dt
	}
	s.Angle += s.Velocity
	s.Velocity, s.velAccel = s.spring.Update(s.Velocity, s.velAccel, 0)
}

// ApplyImpulse adds instantaneous spin velocity.
func (s *SpinState) ApplyImpulse(v float64) {
	s.Velocity += v
}

// Reset restores the base rate and zeroes the angle.
func (s *SpinState) Reset() {
	s.Angle = 0
	s.Rate = s.baseRate
	s.Velocity = 0
	s.velAccel = 0
	s.Paused = false
}

// mergeFlags applies explicitly set CLI flags over the loaded config.
func mergeFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fps":
			cfg.Display.FPS = *targetFPS
		case "workers":
			cfg.Display.Workers = *workers
		case "ramp":
			cfg.Render.Ramp = *rampFlag
		case "spin":
			cfg.Render.SpinRate = *spinRate
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "log-file":
			cfg.Logging.LogFile = *logFile
		}
	})
}

func run(modelPath string) error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	mergeFlags(cfg)

	if cfg.Display.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", cfg.Display.FPS)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ramp, err := render.NewRamp(cfg.Render.Ramp)
	if err != nil {
		return fmt.Errorf("invalid ramp: %w", err)
	}

	// Load model
	mesh, err := models.Load(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	mesh.NormalizeToUnit()

	logger.Info("loaded model",
		zap.String("path", filepath.Base(modelPath)),
		zap.Int("triangles", mesh.TriangleCount()),
	)

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	termRenderer := render.NewTerminalRenderer(term, width, height, ramp)
	fb := render.NewFrameBuffer(width, height)

	// Create camera. Terminal cells are roughly twice as tall as wide, so
	// the aspect ratio halves the width to keep the model round.
	camera := render.NewCamera()
	camera.SetEye(math3d.V3(0, 0, -cfg.Camera.Distance))
	camera.SetTarget(math3d.Zero3())
	camera.SetFOV(cfg.Camera.FOVDegrees * math.Pi / 180)
	camera.SetClipPlanes(cfg.Camera.Near, cfg.Camera.Far)
	camera.SetAspect(float64(width) / (2 * float64(height)))

	rasterizer := render.NewRasterizer(camera, fb, ramp)
	rasterizer.SetLight(math3d.V3(cfg.Light.X, cfg.Light.Y, cfg.Light.Z))
	rasterizer.SetAmbient(cfg.Render.Ambient)

	spin := NewSpinState(cfg.Display.FPS, cfg.Render.SpinRate)

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Forward terminal events to the frame loop. The framebuffer, the
	// renderer, and the spin state are touched only on the render thread,
	// so resizes and key presses never race a frame in progress.
	events := make(chan uv.Event, 16)
	go func() {
		for ev := range term.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	handleEvent := func(ev uv.Event) {
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			width, height = ev.Width, ev.Height
			term.Erase()
			term.Resize(width, height)
			termRenderer = render.NewTerminalRenderer(term, width, height, ramp)
			fb = render.NewFrameBuffer(width, height)
			rasterizer = render.NewRasterizer(camera, fb, ramp)
			rasterizer.SetLight(math3d.V3(cfg.Light.X, cfg.Light.Y, cfg.Light.Z))
			rasterizer.SetAmbient(cfg.Render.Ambient)
			camera.SetAspect(float64(width) / (2 * float64(height)))

		case uv.KeyPressEvent:
			switch {
			case ev.MatchString("escape"), ev.MatchString("ctrl+c"), ev.MatchString("q"):
				cancel()
			case ev.MatchString("space"):
				spin.ApplyImpulse((rand.Float64() - 0.5) * 1.5)
			case ev.MatchString("p"):
				spin.Paused = !spin.Paused
			case ev.MatchString("+", "="):
				spin.Rate = math.Min(10, spin.Rate+0.2)
			case ev.MatchString("-", "_"):
				spin.Rate = math.Max(-10, spin.Rate-0.2)
			case ev.MatchString("r"):
				spin.Reset()
			}
		}
	}

	// Main loop
	targetDuration := time.Second / time.Duration(cfg.Display.FPS)
	lastFrame := time.Now()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		// Apply pending input before the frame starts.
	drain:
		for {
			select {
			case ev := <-events:
				handleEvent(ev)
			default:
				break drain
			}
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		if dt > 0.1 {
			dt = 0.1
		}

		spin.Update(dt)
		mesh.SetRotationY(spin.Angle)

		// Render
		fb.Clear()
		rasterizer.ResetStats()
		rasterizer.DrawMeshParallel(mesh, cfg.Display.Workers)

		termRenderer.Render(fb)
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		logger.Debug("frame",
			zap.Int("drawn", rasterizer.Stats.Drawn),
			zap.Int("culled", rasterizer.Stats.Culled),
			zap.Int("clipped", rasterizer.Stats.Clipped),
		)

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
