package generate

import (
	"fmt"
	"strings"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/corporate_income_tax.json
var citSchemaJSON []byte

//go:embed schema/vat.json
var vatSchemaJSON []byte

// The two target schemas the memo workers request. Compiled once at init;
// a broken embedded schema is a programming error, not a runtime one.
var (
	CITSchema = mustCompile("corporate_income_tax", citSchemaJSON)
	VATSchema = mustCompile("vat_compliance", vatSchemaJSON)
)

// Schema is a closed field set a generated value must conform to exactly.
type Schema struct {
	name     string
	raw      []byte
	compiled *gojsonschema.Schema
}

func mustCompile(name string, raw []byte) *Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded schema %q: %v", name, err))
	}

	return &Schema{
		name:     name,
		raw:      raw,
		compiled: compiled,
	}
}

func (s *Schema) Name() string {
	return s.name
}

func (s *Schema) validate(data []byte) error {
	result, err := s.compiled.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("schema %s: %w", s.name, err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return fmt.Errorf("schema %s violated: %s", s.name, strings.Join(details, "; "))
	}

	return nil
}
