package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kailas-cloud/catalookup/internal/domain"
	domcat "github.com/kailas-cloud/catalookup/internal/domain/catalog"
)

// Field keys. The legacy keys come from the original data file (order 1057 export).
var (
	codeKeys           = []string{"code", "Код"}
	officialNameKeys   = []string{"officialName", "По1057"}
	elaboratedNameKeys = []string{"elaboratedName", "ПоЭл"}
	articleNumberKeys  = []string{"articleNumber", "Арт"}
)

// Decode parses a JSON array of catalog records.
// Non-object array elements are skipped; a non-array payload is ErrInvalidCatalog.
func Decode(r io.Reader) ([]domcat.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes is Decode over an in-memory payload.
func DecodeBytes(data []byte) ([]domcat.Record, error) {
	if !isJSONArray(data) {
		return nil, fmt.Errorf("%w: top-level value is not an array", domain.ErrInvalidCatalog)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}

	records := make([]domcat.Record, 0, len(items))
	for _, raw := range items {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
			continue
		}
		records = append(records, domcat.NewRecord(
			field(obj, codeKeys),
			field(obj, officialNameKeys),
			field(obj, elaboratedNameKeys),
			field(obj, articleNumberKeys),
		))
	}
	return records, nil
}

// field returns the first present, non-null key as text. Strings are used as is,
// numbers keep their literal text, anything else is "".
func field(obj map[string]json.RawMessage, keys []string) string {
	for _, k := range keys {
		raw, ok := obj[k]
		if !ok || isJSONNull(raw) {
			continue
		}
		return scalarText(raw)
	}
	return ""
}

func scalarText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return ""
		}
		return n.String()
	default:
		return ""
	}
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func isJSONArray(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '['
}
