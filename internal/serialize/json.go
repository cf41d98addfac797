package serialize

import (
	"encoding/json"
)

func MarshalJSON(data any) ([]byte, error) {
	return json.Marshal(data)
}

// MarshalIndentJSON renders data for report files meant to be read by people.
func MarshalIndentJSON(data any) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

func UnMarshalJSON(data []byte, dest any) error {
	return json.Unmarshal(data, dest)
}
