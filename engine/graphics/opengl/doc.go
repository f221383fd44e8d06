// Package opengl implements graphics.Context on desktop OpenGL 2.1 through go-gl.
// GLSL ES sources are rewritten to GLSL 1.20 before compilation.
package opengl
