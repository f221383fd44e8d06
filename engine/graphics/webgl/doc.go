// Package webgl implements graphics.Context and frame.Scheduler for browsers on top of
// WebGL 1 and requestAnimationFrame. It builds only for js/wasm.
package webgl
