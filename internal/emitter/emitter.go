// Package emitter turns a models.Value tree into an ordered sequence of
// CSON output lines via depth-bounded recursive descent.
package emitter

import (
	"strconv"

	"github.com/mcncl/csonify/internal/escape"
	"github.com/mcncl/csonify/internal/models"
)

// MaxDepthLimit is the largest accepted MaxDepth. It caps both output size
// on pathological inputs and the recursion depth of the emitter itself.
const MaxDepthLimit = 100

// Options configure one serialization. They are passed by value into every
// recursive call and never mutated.
type Options struct {
	// Indent is the indentation unit, one copy per nesting level.
	Indent string
	// MaxDepth strictly bounds recursion; compounds reached at nesting
	// level == MaxDepth are rendered as quoted strings. Valid range [1,100].
	MaxDepth int
	// EnumsAsStrings renders enum values as their quoted symbolic name
	// instead of their unquoted ordinal.
	EnumsAsStrings bool
}

// Emitter produces output lines for a Value tree.
type Emitter struct {
	opts Options
}

// New creates an Emitter. Options are assumed validated by the caller.
func New(opts Options) *Emitter {
	return &Emitter{opts: opts}
}

// Lines runs the root emission. The root is unnamed, unindented, and starts
// at level -1 so that the direct children of a root mapping carry no leading
// indentation while a root sequence gets its brackets at column zero.
func (e *Emitter) Lines(root models.Value) []string {
	return e.emit(nil, "", false, root, "", -1)
}

// scalarToken renders the inline form of a value: every non-compound kind,
// plus compounds being depth-truncated (which render their default textual
// form as a quoted string).
func (e *Emitter) scalarToken(v models.Value) string {
	switch v.Kind {
	case models.KindNull:
		return "null"
	case models.KindBool:
		return strconv.FormatBool(v.BoolVal)
	case models.KindNumber:
		return v.NumVal
	case models.KindString, models.KindChar:
		return escape.StringLiteral(v.StrVal)
	case models.KindDateTime:
		return escape.StringLiteral(v.TimeText())
	case models.KindEnum:
		if e.opts.EnumsAsStrings {
			return escape.StringLiteral(v.EnumVal.Name)
		}
		return strconv.FormatInt(v.EnumVal.Ordinal, 10)
	default:
		// Sequence or Mapping past the depth bound.
		return escape.StringLiteral(v.String())
	}
}

// emit appends the lines for one value. named distinguishes mapping members
// (which always carry a property name, even an empty one) from the root,
// sequence elements, and brace-wrapped mappings inside sequences; level
// counts nesting depth with the synthetic root at -1.
func (e *Emitter) emit(lines []string, name string, named bool, v models.Value, indent string, level int) []string {
	expand := v.IsCompound() && shouldExpand(level, e.opts.MaxDepth)

	prefix := indent
	if named {
		prefix += escape.PropertyName(name) + ":"
	}

	if !expand {
		if named {
			return append(lines, prefix+" "+e.scalarToken(v))
		}
		return append(lines, prefix+e.scalarToken(v))
	}

	if v.Kind == models.KindSequence {
		if named {
			lines = append(lines, prefix+" [")
		} else {
			lines = append(lines, prefix+"[")
		}
		child := indent + e.opts.Indent
		for _, el := range v.Seq {
			if el.Kind == models.KindMapping && shouldExpand(level+1, e.opts.MaxDepth) {
				lines = append(lines, child+"{")
				lines = e.emitMembers(lines, el.Map, child, level+1)
				lines = append(lines, child+"}")
				continue
			}
			lines = e.emit(lines, "", false, el, child, level+1)
		}
		return append(lines, indent+"]")
	}

	// Expandable mapping: the named form is a "key:" line followed by
	// indented children; the unnamed form (root) contributes no line of
	// its own.
	if named {
		lines = append(lines, prefix)
	}
	return e.emitMembers(lines, v.Map, indent, level)
}

// emitMembers emits the keyed children of a mapping invoked at the given
// indent and level. The synthetic root (level -1) does not indent its
// children; every real level adds one indentation unit.
func (e *Emitter) emitMembers(lines []string, members []models.Member, indent string, level int) []string {
	child := indent + e.opts.Indent
	if level < 0 {
		child = indent
	}
	for _, m := range members {
		lines = e.emit(lines, m.Key, true, m.Value, child, level+1)
	}
	return lines
}
