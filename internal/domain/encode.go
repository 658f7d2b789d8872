package domain

import (
	"bytes"
	"encoding/json"
)

// EncodeJSON marshals v like json.Marshal but leaves <, > and & unescaped,
// so doctest prompts such as ">>>" stay readable in fixture files.
func EncodeJSON(v any) ([]byte, error) {
	return EncodeJSONIndent(v, "", "")
}

// EncodeJSONIndent is EncodeJSON with json.MarshalIndent style indentation.
func EncodeJSONIndent(v any, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if prefix != "" || indent != "" {
		enc.SetIndent(prefix, indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encode terminates every value with a newline
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
