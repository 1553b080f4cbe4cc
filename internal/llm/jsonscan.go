package llm

import "strings"

// ScanJSONObject recovers the first JSON-looking fragment from free-form
// model output: everything from the first '{' through the last '}'. This
// is a best-effort heuristic, not a parser: a stray brace in surrounding
// prose produces garbage, which the subsequent json.Unmarshal rejects as
// InvalidJSONError. Callers must treat both failure modes as ordinary
// remote failures.
func ScanJSONObject(generated string) (string, error) {
	start := strings.Index(generated, "{")
	if start == -1 {
		return "", ErrNoJSONFound
	}
	end := strings.LastIndex(generated, "}")
	if end == -1 || end < start {
		return "", ErrNoJSONFound
	}
	return generated[start : end+1], nil
}
