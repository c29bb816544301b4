package gfx

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shape vertex shader: screen-space quads in framebuffer pixels. aLocal is the
// unrotated offset from the shape centre, or the atlas UV for glyphs.
const shapeVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aLocal;
layout(location = 2) in vec2 aHalf;
layout(location = 3) in vec4 aColor;
layout(location = 4) in vec3 aParams; // kind, corner radius, stroke weight

uniform vec2 uResolution;

out vec2 vLocal;
out vec2 vHalf;
out vec4 vColor;
flat out vec3 vParams;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vLocal = aLocal;
    vHalf = aHalf;
    vColor = aColor;
    vParams = aParams;
}
` + "\x00"

// Shape fragment shader: signed distance coverage per shape kind, one pixel
// of antialiasing at the edge.
const shapeFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vLocal;
in vec2 vHalf;
in vec4 vColor;
flat in vec3 vParams;
out vec4 FragColor;

float sdRoundBox(vec2 p, vec2 b, float r) {
    r = min(r, min(b.x, b.y));
    vec2 q = abs(p) - b + vec2(r);
    return length(max(q, 0.0)) + min(max(q.x, q.y), 0.0) - r;
}

float sdEllipse(vec2 p, vec2 h) {
    h = max(h, vec2(0.001));
    vec2 k = p / h;
    float f = dot(k, k) - 1.0;
    vec2 g = 2.0 * p / (h * h);
    return f / max(length(g), 0.0001);
}

void main() {
    int kind = int(vParams.x + 0.5);
    float cover;
    if (kind == 4) {
        cover = texture(uFontTex, vLocal).a;
    } else if (kind == 2 || kind == 3) {
        float d = sdEllipse(vLocal, vHalf);
        if (kind == 3) d = abs(d) - vParams.z * 0.5;
        cover = clamp(0.5 - d, 0.0, 1.0);
    } else {
        float d = sdRoundBox(vLocal, vHalf, vParams.y);
        if (kind == 1) d = abs(d) - vParams.z * 0.5;
        cover = clamp(0.5 - d, 0.0, 1.0);
    }
    float a = vColor.a * cover;
    if (a < 0.004) discard;
    FragColor = vec4(vColor.rgb, a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
