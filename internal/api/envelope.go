package api

import "encoding/json"

// DecodeList unwraps a collection response. Public routes return a bare array
// while admin routes wrap the same payload in {"data": [...]}; both shapes are
// resolved here so call sites never branch on the envelope.
func DecodeList(raw json.RawMessage, v interface{}) error {
	trimmed := trimLeadingSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(raw, v)
	}

	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return err
	}
	if wrapped.Data == nil {
		return json.Unmarshal(raw, v)
	}
	return json.Unmarshal(wrapped.Data, v)
}

func trimLeadingSpace(data []byte) []byte {
	for i, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return data[i:]
		}
	}
	return nil
}
