package baichuan

import (
	"encoding/json"
	"fmt"
)

// Providers behind OpenAI-compatible gateways are not guaranteed to return a
// single canonical response shape. ExtractContent tries each known shape in
// priority order against the generic JSON tree; the first extractor yielding
// non-empty text wins.

type extractor func(tree map[string]any) string

var extractors = []extractor{
	extractChoiceMessageContent, // {choices:[{message:{content}}]}
	extractChoiceText,           // {choices:[{text}]}
	extractFlatContent,          // {content}
	extractNestedChoices,        // {data:{choices:[{message:{content}}]}}
	extractOutput,               // {output: "..."} or {output:{text}}
}

// ExtractContent pulls the reply text out of a raw completion response body.
// If no shape matches, the error wraps ErrUnparseableResponse and embeds a
// truncated dump of the body for diagnostic logging.
func ExtractContent(raw []byte) (string, error) {
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return "", fmt.Errorf("baichuan: invalid JSON response: %w (raw: %s)", err, truncate(raw, rawDumpLimit))
	}

	for _, extract := range extractors {
		if text := extract(tree); text != "" {
			return text, nil
		}
	}

	return "", fmt.Errorf("%w (raw: %s)", ErrUnparseableResponse, truncate(raw, rawDumpLimit))
}

func extractChoiceMessageContent(tree map[string]any) string {
	choice := firstChoice(tree)
	if choice == nil {
		return ""
	}
	msg, _ := choice["message"].(map[string]any)
	return stringField(msg, "content")
}

func extractChoiceText(tree map[string]any) string {
	return stringField(firstChoice(tree), "text")
}

func extractFlatContent(tree map[string]any) string {
	return stringField(tree, "content")
}

func extractNestedChoices(tree map[string]any) string {
	data, _ := tree["data"].(map[string]any)
	if data == nil {
		return ""
	}
	return extractChoiceMessageContent(data)
}

func extractOutput(tree map[string]any) string {
	switch out := tree["output"].(type) {
	case string:
		return out
	case map[string]any:
		return stringField(out, "text")
	default:
		return ""
	}
}

// firstChoice returns the first element of the choices array, if any.
func firstChoice(tree map[string]any) map[string]any {
	choices, _ := tree["choices"].([]any)
	if len(choices) == 0 {
		return nil
	}
	choice, _ := choices[0].(map[string]any)
	return choice
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}
