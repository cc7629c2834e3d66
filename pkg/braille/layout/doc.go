// Package layout implements the text-to-braille layout engine.
//
// [Layout] translates input text plus a spacing [Config] into a [Plan]: the
// ordered sequence of emitted cells, the 3D dot placements derived from their
// raised bits, and the backing-plate geometry sized to contain them. The
// computation is pure and deterministic, with no I/O and no shared state,
// so identical inputs always produce bit-for-bit identical plans.
//
// The engine owns no 3D concerns beyond coordinates: a plan is handed to a
// solid-geometry backend (see the solid package) which materializes domes and
// the plate. The engine never fails; unmapped characters degrade to blank
// cells, and text with no encodable content yields a plan whose Empty method
// reports true.
package layout
