package rules

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Rules is a caller-supplied rule document layered on top of the
// built-in tables: extra typo corrections, extra fuzzy candidates and an
// optional replacement blocklist.
type Rules struct {
	Blocklist  *BlockConfig      `yaml:"blocklist" json:"blocklist"`
	FixDomains map[string]string `yaml:"fix_domains" json:"fix_domains"`
	FixTlds    map[string]string `yaml:"fix_tlds" json:"fix_tlds"`
	Candidates []string          `yaml:"candidates" json:"candidates"`
}

// Load reads a YAML rules document from path.
func Load(path string) (Rules, error) {
	var r Rules
	if path == "" {
		return r, errors.New("missing rules path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return r, err
	}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("parse rules %s: %w", path, err)
	}
	r.Candidates = cleanCandidates(r.Candidates)
	return r, nil
}

var validHostnameRE = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]*[a-z0-9])?\.)+[a-z]{2,}$`)

// cleanCandidates lowercases file-supplied candidates and drops entries
// that are not plausible hostnames, so one bad line cannot poison the
// fuzzy pool.
func cleanCandidates(in []string) []string {
	var out []string
	for _, cand := range in {
		c := strings.ToLower(strings.TrimSpace(cand))
		if c == "" {
			continue
		}
		if !validHostnameRE.MatchString(c) {
			log.Printf("rules: skipping invalid candidate %q", cand)
			continue
		}
		out = append(out, c)
	}
	return out
}

const rulesSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "blocklist": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "block": {
          "type": "object",
          "additionalProperties": false,
          "properties": {
            "exact": {"type": "array", "items": {"type": "string"}},
            "suffix": {"type": "array", "items": {"type": "string"}},
            "wildcard": {"type": "array", "items": {"type": "string"}},
            "tlds": {"type": "array", "items": {"type": "string"}}
          }
        },
        "allow": {
          "type": "object",
          "additionalProperties": false,
          "properties": {
            "exact": {"type": "array", "items": {"type": "string"}}
          }
        }
      }
    },
    "fix_domains": {"type": "object", "additionalProperties": {"type": "string"}},
    "fix_tlds": {"type": "object", "additionalProperties": {"type": "string"}},
    "candidates": {"type": "array", "items": {"type": "string"}}
  }
}`

// ParseJSON validates a JSON rules document against the schema before
// decoding it, so malformed caller documents fail loudly instead of
// silently dropping fields.
func ParseJSON(data []byte) (Rules, error) {
	var r Rules

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("rules.json", bytes.NewReader([]byte(rulesSchema))); err != nil {
		return r, err
	}
	compiled, err := compiler.Compile("rules.json")
	if err != nil {
		return r, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return r, fmt.Errorf("parse rules json: %w", err)
	}
	if err := compiled.Validate(doc); err != nil {
		return r, fmt.Errorf("invalid rules document: %w", err)
	}

	if err := json.Unmarshal(data, &r); err != nil {
		return r, err
	}
	return r, nil
}
