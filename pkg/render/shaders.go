package render

// The viewer's only shader pair, targeting GLSL 3.30 core. The vertex stage
// consumes the three attribute slots every mesh declares and forwards color
// and texture coordinate to the fragment stage; the fragment stage samples
// the bound texture.

const vertexShaderSrc = `#version 330 core
layout (location = 0) in vec3 position;
layout (location = 1) in vec3 passed_color;
layout (location = 2) in vec2 passed_texel;
uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
out vec4 vertex_color;
out vec2 texel;
void main() {
    gl_Position = projection * view * model * vec4(position, 1.0f);
    vertex_color = vec4(passed_color, 1.0f);
    texel = passed_texel;
}
`

const fragmentShaderSrc = `#version 330 core
in vec4 vertex_color;
in vec2 texel;
out vec4 color;
uniform sampler2D texture_sampler;
void main() {
    color = texture(texture_sampler, texel);
}
`
