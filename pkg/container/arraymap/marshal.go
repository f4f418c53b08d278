package arraymap

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/graph-guard/arraycoll/pkg/container"
	"github.com/tidwall/gjson"
	yaml "gopkg.in/yaml.v3"
)

// MarshalJSON encodes the live pairs in insertion order
// as an array of [key, value] arrays.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	pairs := make([][2]any, m.size)
	for i := 0; i < m.size; i++ {
		pairs[i] = [2]any{m.keys[i], m.values[i]}
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON replaces the contents of m with the pairs in data.
// The buffers are sized exactly to the number of pairs.
// The default return value is kept. JSON null is a no-op.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("malformed JSON")
	}
	r := gjson.ParseBytes(data)
	if r.Type == gjson.Null {
		return nil
	}
	if !r.IsArray() {
		return fmt.Errorf("expected array of pairs, got %s", r.Type)
	}
	pairs := r.Array()
	keys, values := make([]K, len(pairs)), make([]V, len(pairs))
	for i, p := range pairs {
		kv := p.Array()
		if !p.IsArray() || len(kv) != 2 {
			return fmt.Errorf("pair %d: expected [key, value]", i)
		}
		if err := json.Unmarshal([]byte(kv[0].Raw), &keys[i]); err != nil {
			return fmt.Errorf("pair %d: key: %w", i, err)
		}
		if err := json.Unmarshal([]byte(kv[1].Raw), &values[i]); err != nil {
			return fmt.Errorf("pair %d: value: %w", i, err)
		}
	}
	if err := checkDistinct(keys); err != nil {
		return err
	}
	m.keys, m.values, m.size = keys, values, len(pairs)
	return nil
}

// MarshalYAML encodes the live pairs as a mapping
// preserving insertion order.
func (m *Map[K, V]) MarshalYAML() (any, error) {
	n := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: make([]*yaml.Node, 0, m.size*2),
	}
	for i := 0; i < m.size; i++ {
		k, v := new(yaml.Node), new(yaml.Node)
		if err := k.Encode(m.keys[i]); err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		if err := v.Encode(m.values[i]); err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		n.Content = append(n.Content, k, v)
	}
	return n, nil
}

// UnmarshalYAML replaces the contents of m with the pairs of the mapping.
// The buffers are sized exactly to the number of pairs.
// The default return value is kept.
func (m *Map[K, V]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping", value.Line)
	}
	size := len(value.Content) / 2
	keys, values := make([]K, size), make([]V, size)
	for i := 0; i < size; i++ {
		k, v := value.Content[i*2], value.Content[i*2+1]
		if err := k.Decode(&keys[i]); err != nil {
			return fmt.Errorf("line %d: key: %w", k.Line, err)
		}
		if err := v.Decode(&values[i]); err != nil {
			return fmt.Errorf("line %d: value: %w", v.Line, err)
		}
	}
	if err := checkDistinct(keys); err != nil {
		return err
	}
	m.keys, m.values, m.size = keys, values, size
	return nil
}

func checkDistinct[K comparable](keys []K) error {
	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			if keyEqual(keys[i], keys[j]) {
				return &container.ErrorInvalidArgument{
					Argument: "keys",
					Message:  fmt.Sprintf("duplicate key %v", keys[i]),
				}
			}
		}
	}
	return nil
}
