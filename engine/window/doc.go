// Package window provides a GLFW desktop window that owns the OpenGL context and
// drives the frame loop.
package window
