package radial

import "fmt"

// Vocabulary decodes a raw selection into the caller's domain value for a
// wizard field. Implementations must be side-effect free and return an error
// wrapping ErrUnknownOption for selections they do not recognize.
type Vocabulary interface {
	Decode(field, categoryID string, option int) (any, error)
}

// VocabularyFunc adapts a function to the Vocabulary interface.
type VocabularyFunc func(field, categoryID string, option int) (any, error)

// Decode calls f.
func (f VocabularyFunc) Decode(field, categoryID string, option int) (any, error) {
	return f(field, categoryID, option)
}

// TableVocabulary is a Vocabulary backed by a field → category → values table.
// The value for option i of a category is the i-th entry.
type TableVocabulary map[string]map[string][]any

// Decode looks up the value for (field, categoryID, option).
func (t TableVocabulary) Decode(field, categoryID string, option int) (any, error) {
	cats, ok := t[field]
	if !ok {
		return nil, fmt.Errorf("%w: field %q", ErrUnknownOption, field)
	}
	vals, ok := cats[categoryID]
	if !ok {
		return nil, fmt.Errorf("%w: field %q has no category %q", ErrUnknownOption, field, categoryID)
	}
	if option < 0 || option >= len(vals) {
		return nil, fmt.Errorf("%w: field %q category %q has no option %d", ErrUnknownOption, field, categoryID, option)
	}
	return vals[option], nil
}

// Set stores value under (field, categoryID, option), growing the table as
// needed. Unset slots in between hold nil.
func (t TableVocabulary) Set(field, categoryID string, option int, value any) {
	cats, ok := t[field]
	if !ok {
		cats = make(map[string][]any)
		t[field] = cats
	}
	vals := cats[categoryID]
	for len(vals) <= option {
		vals = append(vals, nil)
	}
	vals[option] = value
	cats[categoryID] = vals
}
