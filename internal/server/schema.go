// seehuhn.de/go/lagoon - exact cell counts for rectilinear paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// pathSchema describes one path, given either as a list of moves or as a
// dig plan.  Distances are only checked to be integers; the lagoon package
// reports zero and negative distances itself.
const pathSchema = `{
	"type": "object",
	"properties": {
		"moves": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"dir": {"enum": ["U", "D", "L", "R"]},
					"dist": {"type": "integer"}
				},
				"required": ["dir", "dist"],
				"additionalProperties": false
			}
		},
		"plan": {"type": "string"},
		"decode": {"enum": ["plain", "hex"]}
	},
	"oneOf": [
		{"required": ["moves"]},
		{"required": ["plan"]}
	],
	"additionalProperties": false
}`

var batchSchema = fmt.Sprintf(`{
	"type": "object",
	"properties": {
		"paths": {"type": "array", "minItems": 1, "items": %s}
	},
	"required": ["paths"],
	"additionalProperties": false
}`, pathSchema)

// errInvalidRequest is returned for request bodies which do not match the
// schema.
var errInvalidRequest = errors.New("invalid request")

// validator checks request bodies against a JSON schema.
type validator struct {
	schema *gojsonschema.Schema
}

func newValidator(schema string) (*validator, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return &validator{schema: s}, nil
}

// decode validates body and unmarshals it into v.
func (val *validator) decode(body []byte, v any) error {
	result, err := val.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidRequest, err)
	}
	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("%w: %s", errInvalidRequest, strings.Join(msgs, "; "))
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", errInvalidRequest, err)
	}
	return nil
}
