package triangle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrShaderCompilation is matched by every *ShaderCompilationError.
	ErrShaderCompilation = errors.New("shader compilation failed")

	// ErrShaderLinkage is matched by every *ShaderLinkageError.
	ErrShaderLinkage = errors.New("shader variable missing")
)

// ShaderCompilationError is returned by New when the fixed shader sources
// fail to compile or the program fails to link.  Stage is "vertex",
// "fragment" or "link".
type ShaderCompilationError struct {
	Stage string
	Log   string
}

func (e *ShaderCompilationError) Error() string {
	msg := fmt.Sprintf("%s shader: %v", e.Stage, ErrShaderCompilation)
	if log := strings.TrimSpace(e.Log); log != "" {
		msg += ": " + log
	}
	return msg
}

func (e *ShaderCompilationError) Unwrap() error { return ErrShaderCompilation }

// ShaderLinkageError is returned by New when the linked program has no
// location for an attribute or uniform the triangle binds while drawing.
type ShaderLinkageError struct {
	Name string
}

func (e *ShaderLinkageError) Error() string {
	return fmt.Sprintf("%v: %q", ErrShaderLinkage, e.Name)
}

func (e *ShaderLinkageError) Unwrap() error { return ErrShaderLinkage }
