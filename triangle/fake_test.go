package triangle

import (
	"fmt"

	"golang.org/x/mobile/gl"
)

// fakeGL records the GL calls made by a Triangle.  Methods not overridden
// here panic through the nil embedded gl.Context.
type fakeGL struct {
	gl.Context

	calls []string
	next  uint32

	failCompile gl.Enum // shader type that fails to compile
	failLink    bool
	missing     string // variable with no location

	live        map[string]bool // created and not yet deleted objects
	shaderTypes map[uint32]gl.Enum
	buffered    []byte
	uniform4    map[int32][]float32
	uniformM4   map[int32][]float32
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		live:        map[string]bool{},
		shaderTypes: map[uint32]gl.Enum{},
		uniform4:    map[int32][]float32{},
		uniformM4:   map[int32][]float32{},
	}
}

func (f *fakeGL) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGL) id() uint32 {
	f.next++
	return f.next
}

func (f *fakeGL) CreateShader(ty gl.Enum) gl.Shader {
	s := gl.Shader{Value: f.id()}
	f.live[fmt.Sprintf("shader %d", s.Value)] = true
	f.shaderTypes[s.Value] = ty
	f.record("CreateShader(%#x) %d", uint32(ty), s.Value)
	return s
}

func (f *fakeGL) ShaderSource(s gl.Shader, src string) { f.record("ShaderSource(%d)", s.Value) }

func (f *fakeGL) CompileShader(s gl.Shader) { f.record("CompileShader(%d)", s.Value) }

func (f *fakeGL) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if pname == gl.COMPILE_STATUS && f.failCompile != 0 && f.shaderTypes[s.Value] == f.failCompile {
		return gl.FALSE
	}
	return gl.TRUE
}

func (f *fakeGL) GetShaderInfoLog(s gl.Shader) string { return "ERROR: 0:1: syntax error" }

func (f *fakeGL) DeleteShader(s gl.Shader) {
	delete(f.live, fmt.Sprintf("shader %d", s.Value))
	f.record("DeleteShader(%d)", s.Value)
}

func (f *fakeGL) CreateProgram() gl.Program {
	p := gl.Program{Init: true, Value: f.id()}
	f.live[fmt.Sprintf("program %d", p.Value)] = true
	f.record("CreateProgram() %d", p.Value)
	return p
}

func (f *fakeGL) AttachShader(p gl.Program, s gl.Shader) {
	f.record("AttachShader(%d, %d)", p.Value, s.Value)
}

func (f *fakeGL) LinkProgram(p gl.Program) { f.record("LinkProgram(%d)", p.Value) }

func (f *fakeGL) GetProgrami(p gl.Program, pname gl.Enum) int {
	if pname == gl.LINK_STATUS && f.failLink {
		return gl.FALSE
	}
	return gl.TRUE
}

func (f *fakeGL) GetProgramInfoLog(p gl.Program) string { return "link failed" }

func (f *fakeGL) DeleteProgram(p gl.Program) {
	delete(f.live, fmt.Sprintf("program %d", p.Value))
	f.record("DeleteProgram(%d)", p.Value)
}

var locations = map[string]int32{
	positionName: 0,
	colorName:    1,
	mvpName:      2,
}

func (f *fakeGL) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	loc, ok := locations[name]
	if !ok || name == f.missing {
		loc = -1
	}
	return gl.Attrib{Value: uint(loc)}
}

func (f *fakeGL) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	loc, ok := locations[name]
	if !ok || name == f.missing {
		loc = -1
	}
	return gl.Uniform{Value: loc}
}

func (f *fakeGL) CreateBuffer() gl.Buffer {
	b := gl.Buffer{Value: f.id()}
	f.live[fmt.Sprintf("buffer %d", b.Value)] = true
	f.record("CreateBuffer() %d", b.Value)
	return b
}

func (f *fakeGL) BindBuffer(target gl.Enum, b gl.Buffer) {
	f.record("BindBuffer(%#x, %d)", uint32(target), b.Value)
}

func (f *fakeGL) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	f.buffered = append([]byte(nil), src...)
	f.record("BufferData(%#x, %d bytes, %#x)", uint32(target), len(src), uint32(usage))
}

func (f *fakeGL) DeleteBuffer(b gl.Buffer) {
	delete(f.live, fmt.Sprintf("buffer %d", b.Value))
	f.record("DeleteBuffer(%d)", b.Value)
}

func (f *fakeGL) UseProgram(p gl.Program) { f.record("UseProgram(%d)", p.Value) }

func (f *fakeGL) EnableVertexAttribArray(a gl.Attrib) {
	f.record("EnableVertexAttribArray(%d)", a.Value)
}

func (f *fakeGL) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.record("VertexAttribPointer(%d, %d, %#x, %v, %d, %d)", dst.Value, size, uint32(ty), normalized, stride, offset)
}

func (f *fakeGL) Uniform4fv(dst gl.Uniform, src []float32) {
	f.uniform4[dst.Value] = append([]float32(nil), src...)
	f.record("Uniform4fv(%d, %v)", dst.Value, src)
}

func (f *fakeGL) UniformMatrix4fv(dst gl.Uniform, src []float32) {
	f.uniformM4[dst.Value] = append([]float32(nil), src...)
	f.record("UniformMatrix4fv(%d, %v)", dst.Value, src)
}

func (f *fakeGL) DrawArrays(mode gl.Enum, first, count int) {
	f.record("DrawArrays(%#x, %d, %d)", uint32(mode), first, count)
}

func (f *fakeGL) DisableVertexAttribArray(a gl.Attrib) {
	f.record("DisableVertexAttribArray(%d)", a.Value)
}

// reset clears the call log.
func (f *fakeGL) reset() {
	f.calls = nil
}
