// SPDX-License-Identifier: Unlicense OR MIT

package filter

// PassthroughVertexShader forwards a_position and a_texcoord unchanged.
const PassthroughVertexShader = `attribute vec4 a_position;
attribute vec2 a_texcoord;
varying vec2 v_texcoord;
void main() {
	gl_Position = a_position;
	v_texcoord = a_texcoord;
}
`

// PassthroughFragmentShader samples texSampler as a regular 2D texture.
const PassthroughFragmentShader = `precision mediump float;
uniform lowp sampler2D texSampler;
varying highp vec2 v_texcoord;
void main() {
	gl_FragColor = texture2D(texSampler, v_texcoord);
}
`

// ExternalFragmentShader samples texSampler as an external image, the
// texture type camera surfaces are delivered in.
const ExternalFragmentShader = `#extension GL_OES_EGL_image_external : require
precision mediump float;
uniform samplerExternalOES texSampler;
varying highp vec2 v_texcoord;
void main() {
	gl_FragColor = texture2D(texSampler, v_texcoord);
}
`
