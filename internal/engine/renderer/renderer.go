// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/headset-viewer/internal/engine/camera"
	"github.com/Faultbox/headset-viewer/internal/engine/debug"
	"github.com/Faultbox/headset-viewer/internal/engine/lighting"
	"github.com/Faultbox/headset-viewer/internal/engine/shader"
	"github.com/Faultbox/headset-viewer/internal/logger"
	"github.com/Faultbox/headset-viewer/internal/scene"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background scene.Color
	Lights     lighting.Rig
}

// Renderer draws the parts of a scene as shaded boxes.
type Renderer struct {
	config Config
	log    *zap.Logger

	parts  *shader.Program
	lines  *shader.Program
	lights lighting.Packed

	cubeVAO   uint32
	cubeVBO   uint32
	cubeCount int32

	outlineVAO uint32
	outlineVBO uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		lights: cfg.Lights.Pack(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	bgR, bgG, bgB := cfg.Background.RGB()
	gl.ClearColor(bgR, bgG, bgB, 1.0)

	var err error
	if r.parts, err = shader.Compile(partVertexShader, partFragmentShader); err != nil {
		return nil, fmt.Errorf("part shader: %w", err)
	}
	if r.lines, err = shader.Compile(lineVertexShader, lineFragmentShader); err != nil {
		r.parts.Delete()
		return nil, fmt.Errorf("outline shader: %w", err)
	}

	r.createCube()
	r.createOutline()
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	gl.DeleteVertexArrays(1, &r.cubeVAO)
	gl.DeleteBuffers(1, &r.cubeVBO)
	gl.DeleteVertexArrays(1, &r.outlineVAO)
	gl.DeleteBuffers(1, &r.outlineVBO)
	r.parts.Delete()
	r.lines.Delete()
}

// Resize sets the drawable size in pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw renders one frame. outline, if non-nil, gets a wireframe box.
func (r *Renderer) Draw(s *scene.Scene, cam *camera.Camera, outline *scene.Part) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	viewProj := cam.ViewProjection()

	r.parts.Use()
	r.parts.SetMat4("uViewProj", viewProj)
	r.parts.SetVec3("uCameraPos", cam.Position.X, cam.Position.Y, cam.Position.Z)
	r.setLights()

	gl.BindVertexArray(r.cubeVAO)
	for _, p := range s.Parts() {
		box := s.WorldBounds(p)
		if box.IsEmpty() {
			continue
		}
		c, size := box.Center(), box.Size()
		model := mgl32.Translate3D(c.X, c.Y, c.Z).Mul4(mgl32.Scale3D(size.X, size.Y, size.Z))
		r.parts.SetMat4("uModel", model)

		br, bg, bb := p.Appearance.BaseColor().RGB()
		r.parts.SetVec3("uBaseColor", br, bg, bb)

		var metalness, roughness float32 = 0, 1
		if m := p.Appearance.Material; m != nil {
			metalness, roughness = m.Metalness, m.Roughness
		}
		r.parts.SetFloat("uMetalness", metalness)
		r.parts.SetFloat("uRoughness", roughness)

		var gr, gg, gb, intensity float32
		if p.HasGlow() {
			gr, gg, gb = p.Appearance.Glow.Color.RGB()
			intensity = p.Appearance.Glow.Intensity
		}
		r.parts.SetVec3("uGlowColor", gr, gg, gb)
		r.parts.SetFloat("uGlowIntensity", intensity)

		gl.DrawArrays(gl.TRIANGLES, 0, r.cubeCount)
	}
	gl.BindVertexArray(0)

	if outline != nil {
		r.drawOutline(s, outline, viewProj)
	}
}

func (r *Renderer) setLights() {
	l := &r.lights
	r.parts.SetVec3("uAmbient", l.Ambient[0], l.Ambient[1], l.Ambient[2])
	r.parts.SetVec3("uKeyDir", l.KeyDir[0], l.KeyDir[1], l.KeyDir[2])
	r.parts.SetVec3("uKeyColor", l.KeyColor[0], l.KeyColor[1], l.KeyColor[2])
	r.parts.SetInt("uPointCount", l.Count)
	r.parts.SetVec3Array("uPointPos", l.Positions[:])
	r.parts.SetVec3Array("uPointColor", l.Colors[:])
	r.parts.SetFloatArray("uPointRange", l.Ranges[:])
}

func (r *Renderer) drawOutline(s *scene.Scene, p *scene.Part, viewProj mgl32.Mat4) {
	verts := debug.BoxWireframe(s.WorldBounds(p), debug.DefaultBBoxPadding)
	if verts == nil {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.outlineVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, unsafe.Pointer(&verts[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.lines.Use()
	r.lines.SetMat4("uViewProj", viewProj)
	r.lines.SetVec3("uColor", 0.42, 0.63, 1.0)

	gl.BindVertexArray(r.outlineVAO)
	gl.DrawArrays(gl.LINES, 0, debug.BBoxWireframeVertexCount)
	gl.BindVertexArray(0)
}

func (r *Renderer) createCube() {
	vertices := cubeVertices()
	r.cubeCount = int32(len(vertices) / 6)

	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.BindVertexArray(r.cubeVAO)

	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)

	// Normal (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("cube mesh created", zap.Uint32("vao", r.cubeVAO), zap.Int32("vertices", r.cubeCount))
}

func (r *Renderer) createOutline() {
	gl.GenVertexArrays(1, &r.outlineVAO)
	gl.BindVertexArray(r.outlineVAO)

	gl.GenBuffers(1, &r.outlineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.outlineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, debug.BBoxWireframeVertexCount*3*4, nil, gl.DYNAMIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// cubeVertices returns a unit cube centred on the origin as interleaved
// position and normal triples, two triangles per face.
func cubeVertices() []float32 {
	faces := [6]struct {
		normal, u, v mgl32.Vec3
	}{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	}
	corners := [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}

	out := make([]float32, 0, 6*6*6)
	for _, f := range faces {
		for _, c := range corners {
			p := f.normal.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1])).Mul(0.5)
			out = append(out, p[0], p[1], p[2], f.normal[0], f.normal[1], f.normal[2])
		}
	}
	return out
}
