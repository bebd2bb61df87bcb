package colormap

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type stopObject struct {
	Position float64  `json:"position"`
	Color    [3]uint8 `json:"color"`
}

// UnmarshalJSON accepts {"position": p, "color": [r, g, b]} or the tuple
// form [p, [r, g, b]].
func (s *Stop) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var tuple []json.RawMessage
		if err := json.Unmarshal(data, &tuple); err != nil {
			return fmt.Errorf("colormap stop: %w", err)
		}
		if len(tuple) != 2 {
			return fmt.Errorf("colormap stop: tuple has %d elements, want 2", len(tuple))
		}
		var pos float64
		var rgb [3]uint8
		if err := json.Unmarshal(tuple[0], &pos); err != nil {
			return fmt.Errorf("colormap stop position: %w", err)
		}
		if err := json.Unmarshal(tuple[1], &rgb); err != nil {
			return fmt.Errorf("colormap stop color: %w", err)
		}
		*s = Stop{Pos: pos, R: rgb[0], G: rgb[1], B: rgb[2]}
		return nil
	}
	var obj stopObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("colormap stop: %w", err)
	}
	*s = Stop{Pos: obj.Position, R: obj.Color[0], G: obj.Color[1], B: obj.Color[2]}
	return nil
}

// MarshalJSON writes the object form.
func (s Stop) MarshalJSON() ([]byte, error) {
	return json.Marshal(stopObject{Position: s.Pos, Color: [3]uint8{s.R, s.G, s.B}})
}
