package transport

import (
	"encoding/json"

	"symq/internal/debug"
	"symq/internal/symbol"
)

// DecodeBlocks parses the textual-JSON content blocks of a tool response
// into raw symbol records. A block holding a JSON list contributes every
// element; a single object contributes itself. A malformed block is logged
// as a warning and skipped; the remaining blocks are still processed.
func DecodeBlocks(blocks []string) []symbol.Record {
	records := make([]symbol.Record, 0, len(blocks))

	for _, block := range blocks {
		var v any
		if err := json.Unmarshal([]byte(block), &v); err != nil {
			debug.Warnf("Non-JSON response received: %s", block)
			continue
		}

		switch data := v.(type) {
		case []any:
			for _, item := range data {
				if rec, ok := item.(map[string]any); ok {
					records = append(records, rec)
				}
			}
		case map[string]any:
			records = append(records, data)
		default:
			debug.Warnf("Unexpected response shape %T skipped", v)
		}
	}

	return records
}
