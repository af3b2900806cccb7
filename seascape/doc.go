// Package seascape is the Go reference implementation of the two full-screen
// post-processing passes: the depth visualization pass and the raymarched
// "Seascape" ocean pass with its depth-compositing rule.
//
// Every function mirrors its GLSL counterpart in package shader and works in
// float32 so that results track what a highp fragment shader computes. The
// ocean model is based on "Seascape" by Alexander Alekseev aka TDM (2014),
// licensed CC BY-NC-SA 3.0.
package seascape
