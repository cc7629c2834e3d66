// Package sink renders braille models into concrete output formats.
//
// Mesh sinks (STL, OBJ) serialize the merged triangle mesh produced by the
// mesh backend. Plan sinks (OpenSCAD, JSON) serialize the placement plan
// itself: the SCAD script rebuilds the primitives parametrically inside an
// external modeler, and the JSON document exposes the raw cells, dots, and
// plate for other tooling. All sinks take functional options and return the
// rendered bytes; writing files is the caller's concern.
package sink
