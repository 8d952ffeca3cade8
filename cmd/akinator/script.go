package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// scriptSchema is the JSON Schema a --seed-file/--script replay document
// must satisfy, validated the same way the teacher's contract-testing
// steps validate tool payloads before trusting them.
const scriptSchema = `{
  "type": "object",
  "properties": {
    "answers": {
      "type": "array",
      "items": {
        "type": "string",
        "enum": ["yes", "no", "unknown", "probably_yes", "probably_no", "y", "n", "?", "py", "pn"]
      }
    },
    "confirm": {"type": "boolean"}
  },
  "required": ["answers"]
}`

// script is a scripted sequence of answers for regression replay,
// supplementing the interactive loop with a reproducible run.
type script struct {
	Answers []string `json:"answers"`
	Confirm bool     `json:"confirm"`
}

// loadScript reads and schema-validates a --seed-file/--script document.
func loadScript(path string) (*script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %q: %w", path, err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse script %q: %w", path, err)
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(scriptSchema))
	if err != nil {
		return nil, fmt.Errorf("compile script schema: %w", err)
	}
	result, err := compiled.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("validate script %q: %w", path, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("script %q failed schema validation: %v", path, msgs)
	}

	var s script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode script %q: %w", path, err)
	}
	return &s, nil
}

// answerSource supplies the next answer token for a turn, either read
// from stdin interactively or replayed from a loaded script.
type answerSource interface {
	next() (string, bool)
}

// scriptedSource replays a fixed sequence of answer tokens, printing
// each one as it's consumed so a replay reads like a transcript.
type scriptedSource struct {
	answers []string
	pos     int
}

func newScriptedSource(s *script) *scriptedSource {
	return &scriptedSource{answers: s.Answers}
}

func (s *scriptedSource) next() (string, bool) {
	if s.pos >= len(s.answers) {
		return "", false
	}
	a := s.answers[s.pos]
	s.pos++
	fmt.Println(a)
	return a, true
}
