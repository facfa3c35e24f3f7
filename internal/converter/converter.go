// Package converter exposes the single logical operation of the module:
// turning a models.Value into a complete CSON document string.
package converter

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/mcncl/csonify/internal/emitter"
	"github.com/mcncl/csonify/internal/errors"
	"github.com/mcncl/csonify/internal/models"
)

// DefaultLineEnding is used when the caller passes an empty terminator.
const DefaultLineEnding = "\n"

// Validate checks serialization options against their allowed ranges. The
// converter refuses to produce output for invalid options; there is no
// partial-success mode.
func Validate(opts emitter.Options) error {
	if opts.Indent == "" {
		return errors.NewConfigError("indent unit is empty", errors.ErrIndentEmpty)
	}
	if opts.MaxDepth < 1 || opts.MaxDepth > emitter.MaxDepthLimit {
		return errors.NewConfigError(
			fmt.Sprintf("max depth %d out of range [1,%d]", opts.MaxDepth, emitter.MaxDepthLimit),
			errors.ErrMaxDepthRange,
		)
	}
	return nil
}

// Convert serializes value into CSON text. lineEnding joins the emitted
// lines ("" means DefaultLineEnding); no terminator follows the final line.
func Convert(value models.Value, opts emitter.Options, lineEnding string) (string, error) {
	if err := Validate(opts); err != nil {
		return "", err
	}
	if lineEnding == "" {
		lineEnding = DefaultLineEnding
	}
	lines := emitter.New(opts).Lines(value)
	return strings.Join(lines, lineEnding), nil
}

// Key styles accepted by RewriteKeys.
const (
	StylePreserve = "preserve"
	StyleSnake    = "snake"
	StyleCamel    = "camel"
	StylePascal   = "pascal"
	StyleKebab    = "kebab"
)

// RewriteKeys returns a copy of value with every mapping key renamed
// according to style, recursing through nested mappings and sequences.
// Explicit overrides win over the style; StylePreserve with no overrides
// returns the value unchanged.
func RewriteKeys(value models.Value, style string, overrides map[string]string) models.Value {
	if style == StylePreserve && len(overrides) == 0 {
		return value
	}
	switch value.Kind {
	case models.KindMapping:
		members := make([]models.Member, len(value.Map))
		for i, m := range value.Map {
			members[i] = models.Pair(
				rewriteKey(m.Key, style, overrides),
				RewriteKeys(m.Value, style, overrides),
			)
		}
		return models.Mapping(members...)
	case models.KindSequence:
		elems := make([]models.Value, len(value.Seq))
		for i, e := range value.Seq {
			elems[i] = RewriteKeys(e, style, overrides)
		}
		return models.Sequence(elems...)
	default:
		return value
	}
}

func rewriteKey(key, style string, overrides map[string]string) string {
	if mapped, ok := overrides[key]; ok {
		return mapped
	}
	switch style {
	case StyleSnake:
		return strcase.ToSnake(key)
	case StyleCamel:
		return strcase.ToLowerCamel(key)
	case StylePascal:
		return strcase.ToCamel(key)
	case StyleKebab:
		return strcase.ToKebab(key)
	default:
		return key
	}
}
