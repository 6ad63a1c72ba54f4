// Package wire decodes and encodes the fixed binary structures that make
// up a Tomo container: the magic, the container header, indics, entry
// headers, path segments, paths, and the lookup table embedded in Paths
// and Attributes entries.
//
// Every type in this package exposes a pure Decode function (byte slice in,
// value plus bytes-consumed out) and a pure Encode method (append to a
// growing buffer). Nothing here performs I/O; the caller is responsible for
// getting bytes from a Source into a buffer first. All multi-byte integers
// are little-endian and fields are packed with no padding, matching the
// on-disk layout exactly.
package wire
