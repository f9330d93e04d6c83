package stilllife

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string) (*WindowState, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)

	win.SetFramebufferSizeCallback(func(w *glfw.Window, width int, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}, nil
}

// AspectRatio of the initial framebuffer, used for the projection matrix.
func (s *WindowState) AspectRatio() float32 {
	return float32(s.WindowWidth) / float32(s.WindowHeight)
}

// ShouldClose reports whether the user asked to close the window.
func (s *WindowState) ShouldClose() bool {
	return s.windowGlfw.ShouldClose()
}

// PlatformWindowModule ensures a single shared GLFW window with a live
// OpenGL context (WindowState) is created and made available as a
// resource. Install is idempotent: if a WindowState resource already
// exists, it is reused. Window geometry comes from the Config resource
// when present, else from the module fields.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
}

func (m PlatformWindowModule) Install(app *App) {
	t := reflect.TypeOf((*WindowState)(nil)).Elem()
	if _, ok := app.resources[t]; ok {
		// Already created by another module; preserve the single-window invariant.
		return
	}

	width, height, title := m.Width, m.Height, m.Title
	if cfg := GetResource[Config](app); cfg != nil {
		width, height, title = cfg.Window.Width, cfg.Window.Height, cfg.Window.Title
	}
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	if title == "" {
		title = "Still Life"
	}

	ws, err := createWindowState(width, height, title)
	if err != nil {
		panic(err)
	}
	app.AddResources(ws)

	app.UseSystem(System(pollEventsSystem).InStage(Prelude))
	app.UseSystem(System(windowCloseSystem).InStage(Prelude))
	app.UseSystem(System(terminateWindowSystem).InStage(Finale))
}

func pollEventsSystem(ws *WindowState) {
	glfw.PollEvents()
}

func windowCloseSystem(app *App, ws *WindowState) {
	if ws.ShouldClose() {
		app.Quit()
	}
}

func terminateWindowSystem(ws *WindowState) {
	glfw.Terminate()
}
