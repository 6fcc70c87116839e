package flake

import (
	"github.com/arthur-debert/garnix/pkg/errors"
	"github.com/buger/jsonparser"
)

// ParseDocument converts JSON text into a Node tree, keeping object keys in
// the order they appear.
func ParseDocument(data []byte) (Node, error) {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrNixOutput, "failed to parse flake outputs")
	}

	node, err := parseValue(value, dataType)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrNixOutput, "failed to parse flake outputs")
	}
	return node, nil
}

func parseValue(value []byte, dataType jsonparser.ValueType) (Node, error) {
	switch dataType {
	case jsonparser.Object:
		m := &Mapping{}
		err := jsonparser.ObjectEach(value, func(key []byte, v []byte, dt jsonparser.ValueType, _ int) error {
			k, err := jsonparser.ParseString(key)
			if err != nil {
				return err
			}
			child, err := parseValue(v, dt)
			if err != nil {
				return err
			}
			m.set(k, child)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return m, nil

	case jsonparser.Array:
		s := &Sequence{}
		var itemErr error
		_, err := jsonparser.ArrayEach(value, func(v []byte, dt jsonparser.ValueType, _ int, err error) {
			if itemErr != nil {
				return
			}
			if err != nil {
				itemErr = err
				return
			}
			child, err := parseValue(v, dt)
			if err != nil {
				itemErr = err
				return
			}
			s.Items = append(s.Items, child)
		})
		if err != nil {
			return nil, err
		}
		if itemErr != nil {
			return nil, itemErr
		}
		return s, nil

	case jsonparser.String:
		text, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, err
		}
		return &Scalar{Kind: StringScalar, Text: text}, nil

	case jsonparser.Number:
		return &Scalar{Kind: NumberScalar, Text: string(value)}, nil

	case jsonparser.Boolean:
		return &Scalar{Kind: BoolScalar, Text: string(value)}, nil

	case jsonparser.Null:
		return &Scalar{Kind: NullScalar, Text: "null"}, nil
	}

	return nil, errors.Newf(errors.ErrNixOutput, "unexpected JSON value %q", string(value))
}
