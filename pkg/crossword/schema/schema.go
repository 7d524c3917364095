package schema

import (
	"fmt"
	"math"
	"sort"
	"strings"

	xwErrors "mercator-hq/crossword/pkg/crossword/errors"
)

// Definition field names.
const (
	FieldWidth       = "width"
	FieldHeight      = "height"
	FieldAcrossClues = "acrossClues"
	FieldDownClues   = "downClues"
)

// ClueSpec field names.
const (
	FieldX        = "x"
	FieldY        = "y"
	FieldClue     = "clue"
	FieldAnswer   = "answer"
	FieldSolution = "solution"
	FieldRevealed = "revealed"
)

// clueFields lists every property a clue specification may carry.
var clueFields = []string{FieldX, FieldY, FieldClue, FieldAnswer, FieldSolution, FieldRevealed}

// Definition is a decoded crossword definition.
type Definition struct {
	Width       int
	Height      int
	AcrossClues []*ClueSpec
	DownClues   []*ClueSpec

	// Extra lists top-level properties the compiler does not use, sorted.
	Extra []string
}

// ClueSpec is a decoded clue specification. X and Y are 1-based.
// Optional fields are nil when absent.
type ClueSpec struct {
	X        int
	Y        int
	Clue     string
	Answer   *string
	Solution *string
	Revealed *string
}

// DecodeDefinition decodes an already-parsed definition object (as produced
// by yaml.v3 or encoding/json) into a Definition.
//
// Missing, null, non-integer or negative dimensions are structural errors.
// Clue lists may be absent; when present they must be lists of clue
// specifications, each checked by DecodeClueSpec.
func DecodeDefinition(raw any) (*Definition, error) {
	if raw == nil {
		return nil, xwErrors.Newf(xwErrors.ErrorTypeStructural, "crossword definition is missing")
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, xwErrors.Newf(xwErrors.ErrorTypeStructural,
			"crossword definition must be an object, got %s", typeName(raw))
	}

	def := &Definition{}

	var err error
	if def.Width, err = decodeDimension(obj, FieldWidth); err != nil {
		return nil, err
	}
	if def.Height, err = decodeDimension(obj, FieldHeight); err != nil {
		return nil, err
	}
	if def.AcrossClues, err = decodeClueList(obj, FieldAcrossClues); err != nil {
		return nil, err
	}
	if def.DownClues, err = decodeClueList(obj, FieldDownClues); err != nil {
		return nil, err
	}

	for key := range obj {
		switch key {
		case FieldWidth, FieldHeight, FieldAcrossClues, FieldDownClues:
		default:
			def.Extra = append(def.Extra, key)
		}
	}
	sort.Strings(def.Extra)

	return def, nil
}

// decodeDimension reads a required non-negative integer grid dimension.
func decodeDimension(obj map[string]any, field string) (int, error) {
	v, present := obj[field]
	if !present {
		return 0, xwErrors.Newf(xwErrors.ErrorTypeStructural,
			"missing required field '%s'", field).
			WithPath(field).
			WithSuggestion(xwErrors.SuggestMissingField(field, "15"))
	}
	if v == nil {
		return 0, xwErrors.Newf(xwErrors.ErrorTypeStructural,
			"field '%s' is null", field).WithPath(field)
	}
	n, ok := toInt(v)
	if !ok {
		return 0, xwErrors.Newf(xwErrors.ErrorTypeStructural,
			"field '%s' must be an integer, got %s", field, typeName(v)).WithPath(field)
	}
	if n < 0 {
		return 0, xwErrors.Newf(xwErrors.ErrorTypeStructural,
			"field '%s' must not be negative, got %d", field, n).WithPath(field)
	}
	return n, nil
}

// decodeClueList reads an optional list of clue specifications.
func decodeClueList(obj map[string]any, field string) ([]*ClueSpec, error) {
	v, present := obj[field]
	if !present || v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, xwErrors.Newf(xwErrors.ErrorTypeSchema,
			"field '%s' must be a list of clues, got %s", field, typeName(v)).WithPath(field)
	}

	specs := make([]*ClueSpec, 0, len(items))
	for i, item := range items {
		spec, err := DecodeClueSpec(item)
		if err != nil {
			if e, ok := xwErrors.As(err); ok {
				e.PrefixPath(fmt.Sprintf("%s[%d]", field, i))
			}
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// DecodeClueSpec decodes one clue specification object.
//
// x, y and clue are required; x and y must be integers and clue a string.
// answer, solution and revealed are optional strings. Every unexpected
// property is reported in a single error.
func DecodeClueSpec(raw any) (*ClueSpec, error) {
	if raw == nil {
		return nil, xwErrors.Newf(xwErrors.ErrorTypeSchema, "clue specification is missing")
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, xwErrors.Newf(xwErrors.ErrorTypeSchema,
			"clue specification must be an object, got %s", typeName(raw))
	}

	spec := &ClueSpec{}
	var err error
	if spec.X, err = requireInt(obj, FieldX); err != nil {
		return nil, err
	}
	if spec.Y, err = requireInt(obj, FieldY); err != nil {
		return nil, err
	}
	if spec.Clue, err = requireString(obj, FieldClue); err != nil {
		return nil, err
	}
	if spec.Answer, err = optionalString(obj, FieldAnswer); err != nil {
		return nil, err
	}
	if spec.Solution, err = optionalString(obj, FieldSolution); err != nil {
		return nil, err
	}
	if spec.Revealed, err = optionalString(obj, FieldRevealed); err != nil {
		return nil, err
	}

	if unexpected := unexpectedKeys(obj); len(unexpected) > 0 {
		e := xwErrors.Newf(xwErrors.ErrorTypeSchema,
			"clue %q has unexpected properties: %s", spec.Clue, strings.Join(unexpected, ", ")).
			WithSuggestion(xwErrors.SuggestFieldName(unexpected[0], clueFields))
		if len(unexpected) == 1 {
			e.WithPath(unexpected[0])
		}
		return nil, e
	}

	return spec, nil
}

func requireInt(obj map[string]any, field string) (int, error) {
	v, present := obj[field]
	if !present || v == nil {
		return 0, xwErrors.Newf(xwErrors.ErrorTypeSchema,
			"clue specification is missing required field '%s'", field).
			WithPath(field).
			WithSuggestion(xwErrors.SuggestMissingField(field, "1"))
	}
	n, ok := toInt(v)
	if !ok {
		return 0, xwErrors.Newf(xwErrors.ErrorTypeSchema,
			"field '%s' must be an integer, got %s", field, typeName(v)).WithPath(field)
	}
	return n, nil
}

func requireString(obj map[string]any, field string) (string, error) {
	v, present := obj[field]
	if !present || v == nil {
		return "", xwErrors.Newf(xwErrors.ErrorTypeSchema,
			"clue specification is missing required field '%s'", field).
			WithPath(field).
			WithSuggestion(xwErrors.SuggestMissingField(field, `"1. Clue text (5)"`))
	}
	s, ok := v.(string)
	if !ok {
		return "", xwErrors.Newf(xwErrors.ErrorTypeSchema,
			"field '%s' must be a string, got %s", field, typeName(v)).WithPath(field)
	}
	return s, nil
}

func optionalString(obj map[string]any, field string) (*string, error) {
	v, present := obj[field]
	if !present || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, xwErrors.Newf(xwErrors.ErrorTypeSchema,
			"field '%s' must be a string, got %s", field, typeName(v)).WithPath(field)
	}
	return &s, nil
}

func unexpectedKeys(obj map[string]any) []string {
	var keys []string
	for key := range obj {
		known := false
		for _, f := range clueFields {
			if key == f {
				known = true
				break
			}
		}
		if !known {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// toInt accepts the integer representations produced by yaml.v3 and
// encoding/json. Floats must be integral. Every representation is bounded
// to the int32 range.
func toInt(v any) (int, bool) {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int64:
		n = x
	case int32:
		n = int64(x)
	case uint64:
		if x > math.MaxInt32 {
			return 0, false
		}
		n = int64(x)
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) || math.Abs(x) > math.MaxInt32 {
			return 0, false
		}
		n = int64(x)
	default:
		return 0, false
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int32, int64, uint64:
		return "integer"
	case float64:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
