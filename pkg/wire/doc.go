// Package wire defines the CBOR encoding of parameter payloads exchanged
// with the capture device.
//
// Every populated parameter slot in a batch carries one payload encoded
// with the deterministic encoder mode of this package. Scalar parameters
// (enum codes, bounded numbers, flags) are plain CBOR integers; structured
// parameters use the types in payload.go.
//
// # CBOR Integer Keys
//
// Structured payloads use integer keys or array form for compactness, so a
// payload stays well below the fixed per-slot capacity of a batch.
//
// # Determinism
//
// The encoder sorts map keys canonically and forbids indefinite lengths.
// Two payloads built from the same values always encode to the same bytes,
// which lets a batch slot be compared byte-for-byte.
package wire
