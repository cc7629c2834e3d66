// Package solid defines the contract between the layout engine and a
// solid-geometry backend, and the one-way handoff that drives it.
//
// The layout engine only produces coordinates; a [Backend] materializes them.
// The contract is three operations: add a dome primitive at a location, add
// a box primitive, and union a base with a collection of parts. [Build]
// walks a placement plan and issues those calls in order (one dome per dot,
// one box for the plate, one union) and returns the merged handle. Nothing
// flows back to the engine.
//
// The in-process triangle-mesh implementation lives in the mesh subpackage;
// other backends (e.g. a script emitter driving an external modeler) only
// need to satisfy the interface.
package solid
