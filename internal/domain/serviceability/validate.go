package serviceability

import "encoding/json"

// IsValidPolygon is the structural guard for admin-entered or imported
// geometry: the raw JSON must be an object with type "Polygon" and a
// non-empty coordinates array in which every ring has at least 4 positions
// and every position is a 2-number array. Ring closure (first == last) and
// winding order are not checked; rings are accepted as drawn.
//
// It returns a boolean rather than an error so callers can branch to a
// user-facing rejection message.
func IsValidPolygon(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if t, _ := obj["type"].(string); t != PolygonType {
		return false
	}

	rings, ok := obj["coordinates"].([]any)
	if !ok || len(rings) == 0 {
		return false
	}
	for _, r := range rings {
		ring, ok := r.([]any)
		if !ok || len(ring) < 4 {
			return false
		}
		for _, pos := range ring {
			coords, ok := pos.([]any)
			if !ok || len(coords) != 2 {
				return false
			}
			for _, c := range coords {
				if _, ok := c.(float64); !ok {
					return false
				}
			}
		}
	}
	return true
}
