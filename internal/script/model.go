package script

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Kind names an operation.
type Kind string

const (
	KindLink      Kind = "link"
	KindCut       Kind = "cut"
	KindEvert     Kind = "evert"
	KindQuery     Kind = "query"
	KindLCA       Kind = "lca"
	KindParent    Kind = "parent"
	KindRoot      Kind = "root"
	KindConnected Kind = "connected"
	KindSet       Kind = "set"
)

// Kinds lists every operation kind in a stable order.
var Kinds = []Kind{KindLink, KindCut, KindEvert, KindQuery, KindLCA, KindParent, KindRoot, KindConnected, KindSet}

// Script is a complete workload: the operator, the initial vertex values and
// the operations to run in order.
type Script struct {
	Name     string  `yaml:"name,omitempty"`
	Operator string  `yaml:"operator" validate:"required,oneof=sum min max xor count"`
	Values   []int64 `yaml:"values" validate:"required,min=1"`
	Ops      []Op    `yaml:"ops" validate:"dive"`
}

// Op is one operation. Which handle fields are read depends on Op:
//
//	link, cut, query, connected  u, v
//	lca                          root, u, v
//	parent                       root, u
//	evert, root                  u
//	set                          u, value
type Op struct {
	Op     Kind     `yaml:"op" validate:"required,oneof=link cut evert query lca parent root connected set"`
	U      int      `yaml:"u" validate:"gte=0"`
	V      int      `yaml:"v,omitempty" validate:"gte=0"`
	Root   int      `yaml:"root,omitempty" validate:"gte=0"`
	Value  int64    `yaml:"value,omitempty"`
	Expect *Outcome `yaml:"expect,omitempty"`
}

func (o Op) String() string {
	switch o.Op {
	case KindLCA:
		return fmt.Sprintf("lca(root=%d, %d, %d)", o.Root, o.U, o.V)
	case KindParent:
		return fmt.Sprintf("parent(root=%d, %d)", o.Root, o.U)
	case KindEvert, KindRoot:
		return fmt.Sprintf("%s(%d)", o.Op, o.U)
	case KindSet:
		return fmt.Sprintf("set(%d, %d)", o.U, o.Value)
	default:
		return fmt.Sprintf("%s(%d, %d)", o.Op, o.U, o.V)
	}
}

// handles returns the vertex fields o actually reads.
func (o Op) handles() []int {
	switch o.Op {
	case KindLCA:
		return []int{o.Root, o.U, o.V}
	case KindParent:
		return []int{o.Root, o.U}
	case KindEvert, KindRoot, KindSet:
		return []int{o.U}
	default:
		return []int{o.U, o.V}
	}
}

// expectsBool reports whether o's outcome is boolean rather than a value.
func (o Op) expectsBool() bool {
	switch o.Op {
	case KindLink, KindCut, KindConnected:
		return true
	default:
		return false
	}
}

// hasOutcome reports whether o produces an observable outcome.
func (o Op) hasOutcome() bool {
	return o.Op != KindEvert && o.Op != KindSet
}

var validate = validator.New()

// Validate checks struct tags, then that every handle is in range and every
// expectation has the shape its operation produces.
func (s *Script) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q", ErrInvalidScript, fe.Namespace(), fe.Tag())
		}

		return fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}

	n := len(s.Values)
	for i, op := range s.Ops {
		for _, h := range op.handles() {
			if h >= n {
				return fmt.Errorf("op %d %s: handle %d not in [0,%d): %w", i, op, h, n, ErrHandleOutOfRange)
			}
		}
		if op.Expect == nil {
			continue
		}
		switch {
		case !op.hasOutcome():
			return fmt.Errorf("%w: op %d %s takes no expect", ErrInvalidScript, i, op)
		case op.expectsBool() != (op.Expect.kind == kindBool):
			return fmt.Errorf("%w: op %d %s cannot expect %s", ErrInvalidScript, i, op, op.Expect)
		case op.Op == KindRoot && op.Expect.IsNone():
			return fmt.Errorf("%w: op %d %s always has a root", ErrInvalidScript, i, op)
		}
	}

	return nil
}
