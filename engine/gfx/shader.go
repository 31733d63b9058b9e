package gfx

import (
	"fmt"

	"github.com/softpixel/ember/engine/gfx/device"
)

// Shader wraps a compiled device program. Shaders used with the sprite batch
// must accept the standard vertex layout (vec4 position+UV at location 0,
// vec4 color at location 1) and a mat4 "projection" uniform.
type Shader struct {
	handle device.Program
}

// NewShader compiles and links a program from GLSL source text.
func NewShader(dev device.Device, vertexSrc, fragmentSrc string) (*Shader, error) {
	handle, err := dev.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("gfx: compile shader: %w", err)
	}
	return &Shader{handle: handle}, nil
}

// Default sprite shader: position+UV in attribute 0, tint in attribute 1,
// premultiplied against the sampled texel in the fragment stage.
const (
	defaultVertexShader = `
#version 330 core
layout(location=0) in vec4 aPosUV;
layout(location=1) in vec4 aColor;
uniform mat4 projection;
out vec2 vUV;
out vec4 vColor;
void main() {
    vUV = aPosUV.zw;
    vColor = aColor;
    gl_Position = projection * vec4(aPosUV.xy, 0.0, 1.0);
}
`

	defaultFragmentShader = `
#version 330 core
in vec2 vUV;
in vec4 vColor;
uniform sampler2D uTexture;
out vec4 FragColor;
void main() {
    FragColor = texture(uTexture, vUV) * vColor;
}
`
)
