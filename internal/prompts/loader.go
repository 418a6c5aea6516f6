// Package prompts provides the fixed natural-language instructions sent to
// the generative capabilities. Prompts are stored as a JSON file and embedded
// at compile time.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed prompts.json
var promptData []byte

var (
	loadOnce sync.Once
	loaded   map[string]string
	loadErr  error
)

// Get retrieves a prompt by key. Returns an error if the key is not found or
// the embedded file cannot be parsed.
func Get(key string) (string, error) {
	loadOnce.Do(func() {
		loadErr = json.Unmarshal(promptData, &loaded)
	})
	if loadErr != nil {
		return "", fmt.Errorf("failed to parse embedded prompts: %w", loadErr)
	}
	prompt, ok := loaded[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return prompt, nil
}

// MustGet retrieves a prompt by key, panicking if not found. Use this for
// prompts that are required at initialization time.
func MustGet(key string) string {
	prompt, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces template placeholders in the form {{.Key}} with values from
// data. This is a simple template system for prompt customization.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
