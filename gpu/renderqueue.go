// Package gpu defines the renderer-facing interfaces of the engine: the
// render-command queue and the abstract graphics backend. Concrete
// backends (OpenGL, Vulkan, Metal) implement GraphicsAPI; the core never
// depends on them.
package gpu

import "github.com/go-gl/mathgl/mgl64"

// RenderCommand is one queued draw request. The payload is intentionally
// small while the renderer takes shape: a world transform and a flat
// color stand in for mesh and material handles.
type RenderCommand struct {
	Transform mgl64.Mat4
	Color     RGBA
}

// RenderQueue collects render commands for one frame. It is not safe for
// concurrent use; one goroutine records, the backend consumes.
type RenderQueue struct {
	commands []RenderCommand
}

// Submit appends cmd to the queue.
func (q *RenderQueue) Submit(cmd RenderCommand) {
	q.commands = append(q.commands, cmd)
}

// Clear empties the queue, retaining capacity for the next frame.
func (q *RenderQueue) Clear() {
	q.commands = q.commands[:0]
}

// Commands returns the queued commands in submission order. The slice is
// valid until the next Submit or Clear.
func (q *RenderQueue) Commands() []RenderCommand {
	return q.commands
}

// Len returns the number of queued commands.
func (q *RenderQueue) Len() int {
	return len(q.commands)
}

// Renderable is implemented by anything that can record itself into a
// render queue.
type Renderable interface {
	Render(q *RenderQueue)
}

// GraphicsAPI is the abstract backend bridging the engine to a GPU. It
// offers frame management, clearing, viewport setup and queue submission.
type GraphicsAPI interface {
	// Initialize connects to the underlying backend.
	Initialize() error
	// Shutdown releases all backend resources.
	Shutdown()

	// BeginFrame prepares the swapchain for drawing.
	BeginFrame()
	// EndFrame presents the frame and flushes GPU commands.
	EndFrame()

	// ClearScreen clears the framebuffer with the given color.
	ClearScreen(color RGBA)
	// SetViewport sets the active viewport region in pixels.
	SetViewport(x, y, width, height int)
	// EnableDepthTest toggles depth testing for subsequent draws.
	EnableDepthTest(enable bool)

	// SubmitRenderQueue executes a recorded queue.
	SubmitRenderQueue(q *RenderQueue)
}
