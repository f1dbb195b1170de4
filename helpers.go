package gql

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonRaw = jsoniter.RawMessage

// withPage copies variables and sets the pagination arguments. after is left out
// when the cursor is empty so the first page is requested without one.
func withPage(variables Variables, first int, after string) Variables {
	out := make(Variables, len(variables)+2)
	for k, v := range variables {
		out[k] = v
	}
	out["first"] = first
	if after != "" {
		out["after"] = after
	} else {
		delete(out, "after")
	}
	return out
}

func isNullJSON(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func decodeRecord(raw []byte) (Record, error) {
	if isNullJSON(raw) {
		return Record{}, nil
	}
	var out Record
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = Record{}
	}
	return out, nil
}
