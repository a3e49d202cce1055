package roadmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ErrMalformedRoadmap reports that a model response could not be turned into
// a usable roadmap. Callers treat it as a signal to fall back to templates.
var ErrMalformedRoadmap = errors.New("malformed roadmap response")

// ParseRoadmap interprets a raw model response as a roadmap document. Models
// habitually wrap JSON in markdown fences and add chatty prefixes, so the
// payload is located first, then decoded leniently: numbers where strings are
// expected are stringified instead of rejected.
func ParseRoadmap(raw string) (*Roadmap, error) {
	payload := extractJSON(raw)
	if payload == "" {
		return nil, fmt.Errorf("%w: no JSON object found", ErrMalformedRoadmap)
	}

	var loose map[string]any
	if err := json.Unmarshal([]byte(payload), &loose); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRoadmap, err)
	}

	var rm Roadmap
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &rm,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("build roadmap decoder: %w", err)
	}
	if err := decoder.Decode(loose); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRoadmap, err)
	}

	if len(rm.Phases) == 0 {
		return nil, fmt.Errorf("%w: no phases", ErrMalformedRoadmap)
	}

	return &rm, nil
}

// extractJSON returns the JSON object embedded in a model response. It strips
// a markdown code fence if present, otherwise takes the outermost brace pair.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)

	if start := strings.Index(raw, "```"); start >= 0 {
		rest := raw[start+3:]
		rest = strings.TrimPrefix(rest, "json")
		if end := strings.Index(rest, "```"); end >= 0 {
			raw = rest[:end]
		} else {
			raw = rest
		}
		raw = strings.TrimSpace(raw)
	}

	open := strings.Index(raw, "{")
	close := strings.LastIndex(raw, "}")
	if open < 0 || close < open {
		return ""
	}
	return raw[open : close+1]
}
