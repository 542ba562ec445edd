package schema

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// extensionsKey is the reserved top-level key that enables extension fields.
const extensionsKey = "_extensions"

// ParseYAML builds a sealed schema from a YAML document. The document is
// either a mapping from field name to rules, kept in document order, or a
// sequence of field names for the positional shorthand:
//
//	_extensions: true
//	name: {type: string, max_len: 8}
//	shares: {type: int, min: 0}
//	price: float
//	note:
//
// A scalar value is shorthand for a type expression and an empty value
// declares a field that accepts anything.
func ParseYAML(name string, data []byte, opts ...Option) (*Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var fields []string
		if err := root.Decode(&fields); err != nil {
			return nil, errors.Join(ErrInvalidDefinition, err)
		}
		return FromFields(name, fields, opts...)
	case yaml.MappingNode:
	default:
		return nil, fmt.Errorf("%w: top level must be a mapping or a sequence", ErrInvalidDefinition)
	}

	var table Table
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		if key.Value == extensionsKey {
			var enabled bool
			if err := value.Decode(&enabled); err != nil {
				return nil, fmt.Errorf("%w: %s must be a boolean", ErrInvalidDefinition, extensionsKey)
			}
			if enabled {
				opts = append(opts, WithExtensionFields())
			}
			continue
		}

		rules, err := decodeRules(value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key.Value, err)
		}
		table = append(table, Entry{Field: key.Value, Factory: rules.Chain})
	}

	return FromTable(name, table, opts...)
}

// LoadYAMLFile reads and parses a schema file. The schema is named after the
// file without its extension.
func LoadYAMLFile(path string, opts ...Option) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseYAML(name, data, opts...)
}

func decodeRules(node *yaml.Node) (Rules, error) {
	var rules Rules

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return rules, nil
		}
		rules.Type = node.Value
		return rules, nil
	case yaml.MappingNode:
	default:
		return rules, fmt.Errorf("%w: rules must be a type name or a mapping", ErrInvalidDefinition)
	}

	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return rules, errors.Join(ErrInvalidDefinition, err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &rules,
		ErrorUnused: true,
	})
	if err != nil {
		return rules, err
	}
	if err := dec.Decode(raw); err != nil {
		return rules, errors.Join(ErrInvalidDefinition, err)
	}
	return rules, nil
}
