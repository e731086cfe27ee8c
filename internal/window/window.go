// Package window hosts the viewer in a GLFW window, presenting each software
// rendered frame as a texture on a window-sized quad.
package window

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"cloudview/internal/bitmap"
	"cloudview/internal/input"
	"cloudview/internal/logging"
)

// Window is an OpenGL window with a frame buffer and input tracker. All
// methods must be called from the thread that called CreateWin, which must be
// locked with runtime.LockOSThread.
type Window struct {
	win     *glfw.Window
	logger  logging.Logger
	tracker *input.Tracker

	program uint32
	vao     uint32
	vbo     uint32
	tex     uint32

	frame   *bitmap.Bitmap
	pending bool
	title   string

	fps         int
	frameCount  int
	lastFpsTime float64
}

// CreateWin opens a w×h window at (x, y).
func CreateWin(x, y, w, h int, resizable bool, title string, logger logging.Logger) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize glfw")
	}

	glfw.WindowHint(glfw.Resizable, boolHint(resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(w, h, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "failed to create window")
	}
	win.SetPos(x, y)
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, errors.Wrap(err, "failed to initialize OpenGL")
	}
	logger.Infow("window created", "opengl", gl.GoStr(gl.GetString(gl.VERSION)), "width", w, "height", h)

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}

	wnd := &Window{
		win:     win,
		logger:  logger,
		tracker: input.NewTracker(clock.New()),
		program: program,
		title:   title,
		frame:   bitmap.New(w, h),
	}
	wnd.setupQuad()
	wnd.installCallbacks()
	wnd.lastFpsTime = glfw.GetTime()
	glfw.SwapInterval(1)
	return wnd, nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (w *Window) setupQuad() {
	gl.UseProgram(w.program)

	proj := mgl32.Ortho2D(0, 1, 1, 0)
	projUniform := gl.GetUniformLocation(w.program, gl.Str("proj\x00"))
	gl.UniformMatrix4fv(projUniform, 1, false, &proj[0])
	gl.Uniform1i(gl.GetUniformLocation(w.program, gl.Str("frame\x00")), 0)

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(w.program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.GenTextures(1, &w.tex)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
}

func (w *Window) installCallbacks() {
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.tracker.OnCursor(x, y)
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if btn, ok := mouseButton(b); ok {
			w.tracker.OnButton(btn, action == glfw.Press)
		}
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.tracker.OnScroll(yoff)
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		if vk, ok := virtualKey(key); ok {
			w.tracker.OnKey(vk, action == glfw.Press)
		}
	})
	w.win.SetCharCallback(func(_ *glfw.Window, r rune) {
		w.tracker.OnChar(r)
	})
	w.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		w.tracker.OnFocus(focused)
	})
}

// Advance presents the last frame, polls events and returns the buffer for
// the next frame, sized to the window, together with this frame's input.
func (w *Window) Advance() (*bitmap.Bitmap, input.State) {
	if w.pending {
		w.present()
	}
	glfw.PollEvents()
	w.tickFps()

	width, height := w.win.GetSize()
	if width != w.frame.Width() || height != w.frame.Height() {
		w.logger.Debugw("window resized", "width", width, "height", height)
		w.frame = bitmap.New(width, height)
	}
	w.pending = true
	return w.frame, w.tracker.Advance()
}

func (w *Window) present() {
	fbw, fbh := w.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	img := w.frame.Image()
	if len(img.Pix) > 0 {
		gl.UseProgram(w.program)
		gl.BindTexture(gl.TEXTURE_2D, w.tex)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w.frame.Width()), int32(w.frame.Height()), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		gl.BindVertexArray(w.vao)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, int32(len(quadVertices)/2))
	}
	w.win.SwapBuffers()
}

// tickFps updates the frame counter once a second, as the window title
// and as FPS.
func (w *Window) tickFps() {
	currentTime := glfw.GetTime()
	w.frameCount++
	if currentTime-w.lastFpsTime >= 1.0 {
		w.fps = w.frameCount
		w.win.SetTitle(fmt.Sprintf("%s | FPS: %d", w.title, w.frameCount))
		w.logger.Debugw("frame rate", "fps", w.fps)
		w.frameCount = 0
		w.lastFpsTime = currentTime
	}
}

// Closed reports whether the user asked to close the window.
func (w *Window) Closed() bool {
	return w.win.ShouldClose()
}

// FPS is the number of frames advanced in the last whole second.
func (w *Window) FPS() int {
	return w.fps
}

// Close releases GL objects and the window.
func (w *Window) Close() {
	gl.DeleteTextures(1, &w.tex)
	gl.DeleteBuffers(1, &w.vbo)
	gl.DeleteVertexArrays(1, &w.vao)
	gl.DeleteProgram(w.program)
	w.win.Destroy()
	glfw.Terminate()
}
