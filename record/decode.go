package record

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrNotASequence is returned if an input document is not a sequence of
// mappings.
var ErrNotASequence = errors.New("input is not a sequence of records")

// Decode reads a list of records from r. The input is a YAML document
// holding a sequence of mappings; as YAML is a superset of JSON, a JSON
// array of objects will do as well. Empty input yields an empty list.
//
// Documents of any other shape are rejected with ErrNotASequence. Mappings
// which cannot be represented as records, e.g. due to complex keys, result
// in a decoding error.
func Decode(r io.Reader) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []Record{}, nil
		}
		tracer().Errorf("cannot decode records: %v", err)
		return nil, fmt.Errorf("decoding records: %w", err)
	}
	seq := &doc
	if seq.Kind == yaml.DocumentNode && len(seq.Content) > 0 {
		seq = seq.Content[0]
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d holds %s", ErrNotASequence, seq.Line, seq.ShortTag())
	}
	for _, item := range seq.Content {
		n := item
		if n.Kind == yaml.AliasNode && n.Alias != nil {
			n = n.Alias
		}
		if n.Kind != yaml.MappingNode && n.ShortTag() != "!!null" {
			return nil, fmt.Errorf("%w: line %d holds %s", ErrNotASequence, item.Line, n.ShortTag())
		}
	}
	var raw []map[string]any
	if err := seq.Decode(&raw); err != nil {
		tracer().Errorf("cannot decode records: %v", err)
		return nil, fmt.Errorf("decoding records: %w", err)
	}
	list := make([]Record, 0, len(raw))
	for _, m := range raw {
		list = append(list, Record(m))
	}
	tracer().Debugf("decoded %d records", len(list))
	return list, nil
}

// DecodeNested reads records in nested form from r and converts them into
// a forest (see Unnest).
func DecodeNested(r io.Reader) (Forest, error) {
	nested, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return Unnest(nested), nil
}
