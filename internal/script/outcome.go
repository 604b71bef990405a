package script

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

type outcomeKind uint8

const (
	kindNone outcomeKind = iota
	kindBool
	kindInt
)

// noneLiteral spells a failed query, LCA or parent lookup in scripts.
const noneLiteral = "none"

// Outcome is the observable result of one operation: a boolean (link, cut,
// connected), an integer (query aggregate, vertex handle) or none.
// The zero value is none.
type Outcome struct {
	kind outcomeKind
	b    bool
	n    int64
}

// None is the outcome of a lookup between disconnected vertices.
func None() Outcome { return Outcome{} }

// Bool wraps a boolean outcome.
func Bool(b bool) Outcome { return Outcome{kind: kindBool, b: b} }

// Int wraps an integer outcome.
func Int(n int64) Outcome { return Outcome{kind: kindInt, n: n} }

// optInt maps a (value, ok) pair onto Int or None.
func optInt(n int64, ok bool) Outcome {
	if !ok {
		return None()
	}

	return Int(n)
}

// IsNone reports whether o is the none outcome.
func (o Outcome) IsNone() bool { return o.kind == kindNone }

// Accepted reports whether the operation took effect or found an answer:
// true for Bool(true) and for any Int.
func (o Outcome) Accepted() bool {
	switch o.kind {
	case kindBool:
		return o.b
	case kindInt:
		return true
	default:
		return false
	}
}

func (o Outcome) String() string {
	switch o.kind {
	case kindBool:
		return strconv.FormatBool(o.b)
	case kindInt:
		return strconv.FormatInt(o.n, 10)
	default:
		return noneLiteral
	}
}

func (o *Outcome) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("expect: want a scalar, got %s at line %d", nodeKind(value), value.Line)
	}
	switch value.Tag {
	case "!!bool":
		var b bool
		if err := value.Decode(&b); err != nil {
			return err
		}
		*o = Bool(b)
	case "!!int":
		var n int64
		if err := value.Decode(&n); err != nil {
			return err
		}
		*o = Int(n)
	default:
		if value.Value != noneLiteral {
			return fmt.Errorf("expect: invalid value %q at line %d", value.Value, value.Line)
		}
		*o = None()
	}

	return nil
}

func (o Outcome) MarshalYAML() (any, error) {
	switch o.kind {
	case kindBool:
		return o.b, nil
	case kindInt:
		return o.n, nil
	default:
		return noneLiteral, nil
	}
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
