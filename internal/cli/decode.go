package cli

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cybergodev/jsonutils"
)

// decodeDocument parses YAML (and therefore JSON) text into document
// containers, keeping mapping keys in source order.
func decodeDocument(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return nodeValue(&root, false)
}

// decodeArg parses a single command-line value. Sequences stay plain Go
// slices so they classify as arrays.
func decodeArg(s string) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(s), &root); err != nil {
		return nil, fmt.Errorf("decode %q: %w", s, err)
	}
	return nodeValue(&root, true)
}

func nodeValue(n *yaml.Node, seqAsSlice bool) (any, error) {
	switch n.Kind {
	case 0:
		// empty input
		return jsonutils.Null, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return jsonutils.Null, nil
		}
		return nodeValue(n.Content[0], seqAsSlice)
	case yaml.AliasNode:
		return nodeValue(n.Alias, seqAsSlice)
	case yaml.MappingNode:
		obj := jsonutils.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := nodeValue(n.Content[i+1], seqAsSlice)
			if err != nil {
				return nil, err
			}
			obj.Put(n.Content[i].Value, v)
		}
		return obj, nil
	case yaml.SequenceNode:
		values := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeValue(c, seqAsSlice)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		if seqAsSlice {
			return values, nil
		}
		return jsonutils.NewArray(values...), nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		if v == nil {
			return jsonutils.Null, nil
		}
		return v, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", n.Line, n.Kind)
	}
}
