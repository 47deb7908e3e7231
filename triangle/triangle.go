/*
Package triangle draws one of six fixed, flat colored triangles through a
golang.org/x/mobile/gl context.

A Triangle is created once the draw context is available and drawn every
frame with a column-major model-view-projection matrix.

	t, err := triangle.New(glctx, triangle.MediumBlue)
	if err != nil {
		return err
	}
	defer t.Release()
	...
	t.Draw(mvp)

All methods must be called on the goroutine that owns glctx.
*/
package triangle

import (
	"encoding/binary"
	"math"

	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/gl"
)

// nativeOrder is the host byte order.  f32.Bytes only accepts
// binary.LittleEndian or binary.BigEndian.
var nativeOrder binary.ByteOrder = binary.LittleEndian

func init() {
	if binary.NativeEndian.Uint16([]byte{0, 1}) == 1 {
		nativeOrder = binary.BigEndian
	}
}

// Triangle is a GL program and vertex buffer for a single Variant.
type Triangle struct {
	variant Variant
	color   [4]float32
	data    []byte // vertex data, native byte order, as uploaded

	gl       gl.Context
	program  gl.Program
	buf      gl.Buffer
	position gl.Attrib
	colorU   gl.Uniform
	mvp      gl.Uniform
}

// New validates v, compiles the shader program and uploads the vertices of v
// into a new array buffer on glctx.  An invalid v returns an error matching
// ErrInvalidConfiguration before any GL call is made.
func New(glctx gl.Context, v Variant) (*Triangle, error) {
	shape, err := ShapeOf(v)
	if err != nil {
		return nil, err
	}

	program, err := createProgram(glctx, vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}

	t := &Triangle{
		variant: v,
		color:   shape.Color,
		data:    f32.Bytes(nativeOrder, shape.Vertices[:]...),
		gl:      glctx,
		program: program,
	}
	err = t.locate()
	if err != nil {
		t.Release()
		return nil, err
	}

	t.buf = glctx.CreateBuffer()
	glctx.BindBuffer(gl.ARRAY_BUFFER, t.buf)
	glctx.BufferData(gl.ARRAY_BUFFER, t.data, gl.STATIC_DRAW)

	return t, nil
}

func (t *Triangle) locate() (err error) {
	t.position, err = attribLocation(t.gl, t.program, positionName)
	if err != nil {
		return err
	}
	t.colorU, err = uniformLocation(t.gl, t.program, colorName)
	if err != nil {
		return err
	}
	t.mvp, err = uniformLocation(t.gl, t.program, mvpName)
	return err
}

// Draw renders the triangle transformed by mvp, a column-major 4x4 matrix.
// Draw does nothing after Release.
func (t *Triangle) Draw(mvp [16]float32) {
	if t.gl == nil {
		return
	}
	t.gl.UseProgram(t.program)

	t.gl.BindBuffer(gl.ARRAY_BUFFER, t.buf)
	t.gl.EnableVertexAttribArray(t.position)
	t.gl.VertexAttribPointer(t.position, coordsPerVertex, gl.FLOAT, false, vertexStride, 0)

	t.gl.Uniform4fv(t.colorU, t.color[:])
	t.gl.UniformMatrix4fv(t.mvp, mvp[:])

	t.gl.DrawArrays(gl.TRIANGLES, 0, vertexCount)

	t.gl.DisableVertexAttribArray(t.position)
}

// VertexCount is always 3.
func (t *Triangle) VertexCount() int {
	return vertexCount
}

// Variant returns the Variant t was created with.
func (t *Triangle) Variant() Variant {
	return t.variant
}

// Color returns the RGBA color bound while drawing.
func (t *Triangle) Color() [4]float32 {
	return t.color
}

// Vertices decodes the vertex data t uploaded to its buffer.
func (t *Triangle) Vertices() [coordsPerVertex * vertexCount]float32 {
	var v [coordsPerVertex * vertexCount]float32
	for i := range v {
		v[i] = math.Float32frombits(nativeOrder.Uint32(t.data[4*i:]))
	}
	return v
}

// Release deletes the GL buffer and program owned by t.  Calling Release more
// than once is safe.
func (t *Triangle) Release() {
	if t.gl == nil {
		return
	}
	if t.buf.Value != 0 {
		t.gl.DeleteBuffer(t.buf)
		t.buf = gl.Buffer{}
	}
	if t.program.Value != 0 {
		t.gl.DeleteProgram(t.program)
		t.program = gl.Program{}
	}
	t.gl = nil
}
