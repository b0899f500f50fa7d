package jsonnode

import (
	"strconv"
	"strings"
)

// Kind identifies the value held by a Node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// Node is one value in a document tree. The zero value is a JSON null.
type Node struct {
	kind   Kind
	b      bool
	num    float64
	str    string
	items  []*Node
	keys   []string
	fields map[string]*Node
}

func NewNull() *Node { return &Node{} }

func NewBool(v bool) *Node { return &Node{kind: KindBool, b: v} }

func NewNumber(v float64) *Node { return &Node{kind: KindNumber, num: v} }

func NewInt(v int) *Node { return &Node{kind: KindNumber, num: float64(v)} }

func NewString(v string) *Node { return &Node{kind: KindString, str: v} }

// NewArray returns an array node holding items in order.
func NewArray(items ...*Node) *Node {
	n := &Node{kind: KindArray}
	for _, item := range items {
		n.items = append(n.items, orNull(item))
	}
	return n
}

// NewObject returns an empty object node.
func NewObject() *Node {
	return &Node{kind: KindObject, fields: make(map[string]*Node)}
}

func orNull(n *Node) *Node {
	if n == nil {
		return NewNull()
	}
	return n
}

// Kind reports the node kind. A nil node reports KindNull.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}
	return n.kind
}

func (n *Node) IsObject() bool { return n.Kind() == KindObject }

func (n *Node) IsArray() bool { return n.Kind() == KindArray }

// Get returns the value stored under key, or nil when n is not an object or
// the key is absent.
func (n *Node) Get(key string) *Node {
	if n.Kind() != KindObject {
		return nil
	}
	return n.fields[key]
}

// Has reports whether key is present on an object node.
func (n *Node) Has(key string) bool {
	return n.Get(key) != nil
}

// Set stores value under key. An existing key keeps its position; a new key
// is appended. Set is a no-op on anything but an object.
func (n *Node) Set(key string, value *Node) {
	if n.Kind() != KindObject {
		return
	}
	if n.fields == nil {
		n.fields = make(map[string]*Node)
	}
	if _, exists := n.fields[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.fields[key] = orNull(value)
}

// Remove deletes key from an object node and reports whether it was present.
func (n *Node) Remove(key string) bool {
	if n.Kind() != KindObject {
		return false
	}
	if _, exists := n.fields[key]; !exists {
		return false
	}
	delete(n.fields, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i:i], n.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the object keys in document order.
func (n *Node) Keys() []string {
	if n.Kind() != KindObject {
		return nil
	}
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Each calls fn for every key/value pair of an object in document order.
func (n *Node) Each(fn func(key string, value *Node)) {
	if n.Kind() != KindObject {
		return
	}
	for _, key := range n.Keys() {
		if value, ok := n.fields[key]; ok {
			fn(key, value)
		}
	}
}

// Items returns the elements of an array node.
func (n *Node) Items() []*Node {
	if n.Kind() != KindArray {
		return nil
	}
	return n.items
}

// Append adds value to the end of an array node.
func (n *Node) Append(value *Node) {
	if n.Kind() != KindArray {
		return
	}
	n.items = append(n.items, orNull(value))
}

// Len returns the number of object fields or array items; zero otherwise.
func (n *Node) Len() int {
	switch n.Kind() {
	case KindObject:
		return len(n.keys)
	case KindArray:
		return len(n.items)
	default:
		return 0
	}
}

// AsString converts the node to a string. Numbers and booleans are rendered
// in their JSON form; everything else yields "".
func (n *Node) AsString() string {
	switch n.Kind() {
	case KindString:
		return n.str
	case KindNumber:
		s, err := FormatNumber(n.num)
		if err != nil {
			return ""
		}
		return s
	case KindBool:
		return strconv.FormatBool(n.b)
	default:
		return ""
	}
}

// AsFloat converts the node to a float64. Numeric strings are parsed with the
// invariant convention; anything unparseable yields 0.
func (n *Node) AsFloat() float64 {
	switch n.Kind() {
	case KindNumber:
		return n.num
	case KindString:
		v, err := strconv.ParseFloat(strings.TrimSpace(n.str), 64)
		if err != nil {
			return 0
		}
		return v
	case KindBool:
		if n.b {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// AsInt converts the node to an int, truncating fractional values.
func (n *Node) AsInt() int {
	if n.Kind() == KindString {
		if v, err := strconv.Atoi(strings.TrimSpace(n.str)); err == nil {
			return v
		}
	}
	return int(n.AsFloat())
}

// AsBool converts the node to a bool. Non-zero numbers and the string "true"
// are true.
func (n *Node) AsBool() bool {
	switch n.Kind() {
	case KindBool:
		return n.b
	case KindNumber:
		return n.num != 0
	case KindString:
		v, _ := strconv.ParseBool(strings.TrimSpace(n.str))
		return v
	default:
		return false
	}
}

// IsBlank reports whether the node carries no usable content: nil, null, a
// whitespace-only string, or an empty array or object.
func (n *Node) IsBlank() bool {
	switch n.Kind() {
	case KindNull:
		return true
	case KindString:
		return strings.TrimSpace(n.str) == ""
	case KindArray, KindObject:
		return n.Len() == 0
	default:
		return false
	}
}

// Clone returns a shallow copy: containers are new, children are shared.
// Removing or replacing keys on the copy leaves n untouched.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{kind: n.kind, b: n.b, num: n.num, str: n.str}
	switch n.kind {
	case KindArray:
		out.items = append([]*Node(nil), n.items...)
	case KindObject:
		out.keys = append([]string(nil), n.keys...)
		out.fields = make(map[string]*Node, len(n.fields))
		for k, v := range n.fields {
			out.fields[k] = v
		}
	}
	return out
}
