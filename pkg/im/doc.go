// Package im declares the immediate-mode UI surface that imscope sequences
// calls into.
//
// The central type is Backend: the fixed catalogue of paired Begin*/End* and
// Push*/Pop* operations, consumed purely as callables with documented argument
// lists and return types. Any Dear ImGui style binding can satisfy it; the
// guard layer in pkg/sugar never looks past the interface.
//
// The package also carries the value types those operations exchange: Vec2 and
// Vec4 (vector types from golang.org/x/image/math/f32), packed ARGB Color,
// and the flag and index enumerations (WindowFlags, Col, StyleVarID, ...).
//
// Bindings report their library release through Backend.Version; pkg/sugar
// rejects releases older than the catalogue requires.
package im
