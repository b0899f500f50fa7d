// Package jsonnode models loosely structured JSON documents as an ordered
// tree of typed values.
//
// Objects keep their keys in document order so a read-modify-write cycle
// emits fields in a stable, predictable sequence. Accessors are tolerant: a
// missing key yields a nil *Node, and the As* conversions on a nil or
// mismatched node return the zero value instead of failing. That mirrors how
// level packages are authored in practice, where optional fields are
// routinely absent or written with the wrong type by third-party tools.
//
// Printing never consults locale settings; numbers are always written with a
// point decimal separator.
package jsonnode
