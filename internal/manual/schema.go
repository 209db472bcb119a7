package manual

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/denotw/website/internal/model"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed toc.schema.json
var tocSchema string

const tocSchemaUrl = "resource://toc.schema.json"

var tocValidator = jsonschema.MustCompileString(tocSchemaUrl, tocSchema)

// ParseTableOfContents validates raw against the table of contents schema and decodes it.
func ParseTableOfContents(raw []byte) (model.TableOfContents, error) {
	var parsed any
	err := json.Unmarshal(raw, &parsed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTableOfContents, err)
	}
	err = tocValidator.Validate(parsed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTableOfContents, err)
	}
	var toc model.TableOfContents
	err = json.Unmarshal(raw, &toc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTableOfContents, err)
	}
	return toc, nil
}
