// Package gfx uploads a render.Batch to OpenGL 4.1 core and draws it with a
// single shader program.
package gfx

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"quizsky/internal/game"
	"quizsky/internal/render"
	"quizsky/internal/render/glyph"
)

// maxBatchVerts bounds one upload; larger frames are drawn in several calls.
const maxBatchVerts = 6 * 8192

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uResolution int32
	uFontTex    int32

	fontTex uint32

	batch    *render.Batch
	fbW, fbH int
}

// NewRenderer needs a current GL context.
func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(shapeVertSrc, shapeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("shape program: %w", err)
	}
	atlas := glyph.NewAtlas()
	r := &Renderer{
		prog:  prog,
		batch: render.NewBatch(atlas),
	}

	gl.UseProgram(prog)
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.uFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.uFontTex, 0)

	// Streaming VAO/VBO: pos(2) local(2) half(2) color(4) params(3).
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(render.Stride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxBatchVerts*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aLocal
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aHalf
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, glOffset(4*4))
	gl.EnableVertexAttribArray(3) // aColor
	gl.VertexAttribPointer(3, 4, gl.FLOAT, false, stride, glOffset(6*4))
	gl.EnableVertexAttribArray(4) // aParams
	gl.VertexAttribPointer(4, 3, gl.FLOAT, false, stride, glOffset(10*4))
	r.vao = vao
	r.vbo = vbo
	gl.BindVertexArray(0)

	// Font atlas texture.
	img := atlas.Image
	b := img.Bounds()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	r.fontTex = tex

	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears the framebuffer and returns the canvas for this frame.
func (r *Renderer) BeginFrame(fbW, fbH int) game.Canvas {
	r.fbW, r.fbH = fbW, fbH
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.batch.Reset()
	return r.batch
}

// EndFrame draws everything queued since BeginFrame, in order.
func (r *Renderer) EndFrame() {
	verts := r.batch.Verts
	if len(verts) == 0 {
		return
	}

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.Uniform2f(r.uResolution, float32(r.fbW), float32(r.fbH))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	chunk := maxBatchVerts * render.Stride
	for len(verts) > 0 {
		n := min(len(verts), chunk)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*4, gl.Ptr(verts[:n]))
		gl.DrawArrays(gl.TRIANGLES, 0, int32(n/render.Stride))
		verts = verts[n:]
	}

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
	r.batch.Reset()
}
