package main

import (
	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/annotate.schema.json
var annotateSchemaJSON string

func compileRequestSchema() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("annotate.schema.json", annotateSchemaJSON)
}
