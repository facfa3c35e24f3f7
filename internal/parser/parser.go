// Package parser reads a JSON document into a models.Value tree for the
// CLI. It walks the decoder's token stream instead of decoding into Go maps
// so that object key order is preserved exactly and duplicate keys pass
// through verbatim.
package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/mcncl/csonify/internal/errors"
	"github.com/mcncl/csonify/internal/models"
)

// Parse converts JSON data from an io.Reader into a models.Value
func Parse(reader io.Reader) (models.Value, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber() // keep numbers in their source decimal form

	tok, err := decoder.Token()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return models.Value{}, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		return models.Value{}, wrapDecodeError(err)
	}

	root, err := parseValue(decoder, tok)
	if err != nil {
		return models.Value{}, err
	}

	// Anything but EOF after the root value means multiple documents.
	if _, err := decoder.Token(); err == nil {
		return models.Value{}, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	} else if !stderrors.Is(err, io.EOF) {
		return models.Value{}, errors.NewParsingError("invalid trailing data after first JSON value", err)
	}

	return root, nil
}

// parseValue builds a Value from the token just read plus any nested tokens
// it owns. Objects become ordered mappings in source key order.
func parseValue(decoder *json.Decoder, tok json.Token) (models.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(decoder)
		case '[':
			return parseArray(decoder)
		}
		return models.Value{}, errors.NewParsingError(fmt.Sprintf("unexpected delimiter %q", t.String()), errors.ErrInvalidJSON)
	case string:
		return models.String(t), nil
	case json.Number:
		return models.Number(string(t)), nil
	case bool:
		return models.Bool(t), nil
	case nil:
		return models.Null(), nil
	default:
		return models.Value{}, errors.NewParsingError(fmt.Sprintf("unexpected token type %T", tok), errors.ErrInvalidJSON)
	}
}

func parseObject(decoder *json.Decoder) (models.Value, error) {
	var members []models.Member
	for {
		tok, err := decoder.Token()
		if err != nil {
			return models.Value{}, wrapDecodeError(err)
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return models.Mapping(members...), nil
		}
		key, ok := tok.(string)
		if !ok {
			return models.Value{}, errors.NewParsingError(fmt.Sprintf("expected object key, got %T", tok), errors.ErrInvalidJSON)
		}
		valTok, err := decoder.Token()
		if err != nil {
			return models.Value{}, wrapDecodeError(err)
		}
		val, err := parseValue(decoder, valTok)
		if err != nil {
			return models.Value{}, err
		}
		members = append(members, models.Pair(key, val))
	}
}

func parseArray(decoder *json.Decoder) (models.Value, error) {
	var elems []models.Value
	for {
		tok, err := decoder.Token()
		if err != nil {
			return models.Value{}, wrapDecodeError(err)
		}
		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return models.Sequence(elems...), nil
		}
		el, err := parseValue(decoder, tok)
		if err != nil {
			return models.Value{}, err
		}
		elems = append(elems, el)
	}
}

func wrapDecodeError(err error) error {
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.NewParsingError("unexpected end of JSON input", errors.ErrInvalidJSON)
	}
	var syntaxError *json.SyntaxError
	if stderrors.As(err, &syntaxError) {
		return errors.NewParsingError(
			fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
			errors.ErrInvalidJSON,
		)
	}
	return errors.NewParsingError("failed to decode JSON", err)
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return models.Value{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	reader := strings.NewReader(jsonString)
	return Parse(reader)
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.Value{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Value{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	// Check for empty file before parsing
	stat, err := file.Stat()
	if err != nil {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
