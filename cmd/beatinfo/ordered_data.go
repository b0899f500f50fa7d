package main

import (
	"gopkg.in/yaml.v3"

	"beatinfo/internal/jsonnode"
)

// orderedData exposes a customData subtree to the JSON and YAML encoders
// without losing key order.
type orderedData struct {
	node *jsonnode.Node
}

func (d orderedData) MarshalJSON() ([]byte, error) {
	if d.node == nil {
		return []byte("null"), nil
	}
	return d.node.MarshalJSON()
}

func (d orderedData) MarshalYAML() (any, error) {
	return toYAMLNode(d.node)
}

func toYAMLNode(n *jsonnode.Node) (*yaml.Node, error) {
	switch n.Kind() {
	case jsonnode.KindObject:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range n.Keys() {
			value, err := toYAMLNode(n.Get(key))
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, value)
		}
		return out, nil
	case jsonnode.KindArray:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range n.Items() {
			value, err := toYAMLNode(item)
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, value)
		}
		return out, nil
	case jsonnode.KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.AsString()}, nil
	case jsonnode.KindNumber:
		text, err := jsonnode.FormatNumber(n.AsFloat())
		if err != nil {
			return nil, err
		}
		tag := "!!float"
		if n.AsFloat() == float64(int64(n.AsFloat())) {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}, nil
	case jsonnode.KindBool:
		value := "false"
		if n.AsBool() {
			value = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: value}, nil
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
}
