package jsonnode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v with a point decimal separator and no exponent,
// independent of any locale configuration. Integral values print without a
// fractional part.
func FormatNumber(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("number %v is not representable in JSON", v)
	}
	if v == 0 {
		// Normalizes negative zero.
		return "0", nil
	}
	return strconv.FormatFloat(v, 'f', -1, 64), nil
}

// Print renders the tree as JSON. A non-empty indent produces one value per
// line, nested by indent; an empty indent produces compact output.
func (n *Node) Print(indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeNode(&buf, n, indent, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler with compact output.
func (n *Node) MarshalJSON() ([]byte, error) {
	return n.Print("")
}

func writeNode(buf *bytes.Buffer, n *Node, indent string, depth int) error {
	switch n.Kind() {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(n.b))
	case KindNumber:
		s, err := FormatNumber(n.num)
		if err != nil {
			return err
		}
		buf.WriteString(s)
	case KindString:
		writeString(buf, n.str)
	case KindArray:
		if len(n.items) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			newline(buf, indent, depth+1)
			if err := writeNode(buf, item, indent, depth+1); err != nil {
				return err
			}
		}
		newline(buf, indent, depth)
		buf.WriteByte(']')
	case KindObject:
		if len(n.keys) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteByte('{')
		for i, key := range n.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			newline(buf, indent, depth+1)
			writeString(buf, key)
			buf.WriteByte(':')
			if indent != "" {
				buf.WriteByte(' ')
			}
			if err := writeNode(buf, n.fields[key], indent, depth+1); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
		newline(buf, indent, depth)
		buf.WriteByte('}')
	}
	return nil
}

func newline(buf *bytes.Buffer, indent string, depth int) {
	if indent == "" {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(indent, depth))
}

func writeString(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		buf.WriteString(strconv.Quote(s))
		return
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
}
