package progress

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const recordSchemaURL = "schema://progress-record.json"

// recordSchema describes the serialized Record as stored in the local cache.
const recordSchema = `{
	"type": "object",
	"properties": {
		"currentMission": {"type": "string", "minLength": 1},
		"completedLessons": {"type": "array", "items": {"type": "integer"}},
		"currentLesson": {"type": "integer"},
		"totalXP": {"type": "integer"},
		"streakDays": {"type": "integer"},
		"lastActivity": {"type": ["string", "null"]}
	},
	"required": ["currentMission", "completedLessons", "totalXP"]
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compiledRecordSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(recordSchema))
		if err != nil {
			schemaErr = fmt.Errorf("parse record schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(recordSchemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(recordSchemaURL)
	})
	return compiledSchema, schemaErr
}

// Marshal serializes r, normalized, to JSON.
func Marshal(r Record) ([]byte, error) {
	b, err := json.Marshal(Normalize(r))
	if err != nil {
		return nil, fmt.Errorf("marshal progress record: %w", err)
	}
	return b, nil
}

// Unmarshal decodes and normalizes a record produced by Marshal. Data that is
// not valid JSON or does not match the record schema yields ErrMalformedRecord.
func Unmarshal(data []byte) (Record, error) {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	sch, err := compiledRecordSchema()
	if err != nil {
		return Record{}, fmt.Errorf("compile record schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return Normalize(r), nil
}
