package infodat

import (
	"beatinfo/internal/jsonnode"
	"beatinfo/internal/song"
)

// ColorToNode encodes c as {"r", "g", "b"}. Alpha is not stored.
func ColorToNode(c song.Color) *jsonnode.Node {
	obj := jsonnode.NewObject()
	obj.Set("r", jsonnode.NewNumber(c.R))
	obj.Set("g", jsonnode.NewNumber(c.G))
	obj.Set("b", jsonnode.NewNumber(c.B))
	return obj
}

// ColorFromNode decodes an {"r", "g", "b"} object. Missing or malformed
// channels read as 0; the result is always opaque.
func ColorFromNode(n *jsonnode.Node) song.Color {
	return song.RGB(n.Get("r").AsFloat(), n.Get("g").AsFloat(), n.Get("b").AsFloat())
}
