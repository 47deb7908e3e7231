package triangle

import "golang.org/x/mobile/gl"

// Shader variable names looked up after linking.
const (
	positionName = "vPosition"
	colorName    = "vColor"
	mvpName      = "uMVPMatrix"
)

// uMVPMatrix must be the left operand for the product to be correct.
const vertexShader = `#version 100

uniform mat4 uMVPMatrix;
attribute vec4 vPosition;

void main() {
	gl_Position = uMVPMatrix * vPosition;
}`

const fragmentShader = `#version 100
precision mediump float;

uniform vec4 vColor;

void main() {
	gl_FragColor = vColor;
}`

// createProgram compiles and links the vertex and fragment sources into a new
// program.  Nothing created along the way survives a failure.
func createProgram(glctx gl.Context, vertexSrc, fragmentSrc string) (gl.Program, error) {
	vs, err := loadShader(glctx, gl.VERTEX_SHADER, "vertex", vertexSrc)
	if err != nil {
		return gl.Program{}, err
	}
	fs, err := loadShader(glctx, gl.FRAGMENT_SHADER, "fragment", fragmentSrc)
	if err != nil {
		glctx.DeleteShader(vs)
		return gl.Program{}, err
	}

	program := glctx.CreateProgram()
	if program.Value == 0 {
		glctx.DeleteShader(vs)
		glctx.DeleteShader(fs)
		return gl.Program{}, &ShaderCompilationError{Stage: "link", Log: "no programs available"}
	}
	glctx.AttachShader(program, vs)
	glctx.AttachShader(program, fs)
	glctx.LinkProgram(program)

	// flag shaders for deletion when the program is deleted
	glctx.DeleteShader(vs)
	glctx.DeleteShader(fs)

	if glctx.GetProgrami(program, gl.LINK_STATUS) == gl.FALSE {
		log := glctx.GetProgramInfoLog(program)
		glctx.DeleteProgram(program)
		return gl.Program{}, &ShaderCompilationError{Stage: "link", Log: log}
	}
	return program, nil
}

func loadShader(glctx gl.Context, ty gl.Enum, stage, src string) (gl.Shader, error) {
	shader := glctx.CreateShader(ty)
	glctx.ShaderSource(shader, src)
	glctx.CompileShader(shader)
	if glctx.GetShaderi(shader, gl.COMPILE_STATUS) == gl.FALSE {
		log := glctx.GetShaderInfoLog(shader)
		glctx.DeleteShader(shader)
		return gl.Shader{}, &ShaderCompilationError{Stage: stage, Log: log}
	}
	return shader, nil
}

// attribLocation returns the location of the named attribute or a
// *ShaderLinkageError if the program does not have one.
func attribLocation(glctx gl.Context, p gl.Program, name string) (gl.Attrib, error) {
	a := glctx.GetAttribLocation(p, name)
	// glGetAttribLocation returns -1 for an unknown name
	if int32(a.Value) < 0 {
		return gl.Attrib{}, &ShaderLinkageError{Name: name}
	}
	return a, nil
}

func uniformLocation(glctx gl.Context, p gl.Program, name string) (gl.Uniform, error) {
	u := glctx.GetUniformLocation(p, name)
	if u.Value < 0 {
		return gl.Uniform{}, &ShaderLinkageError{Name: name}
	}
	return u, nil
}
