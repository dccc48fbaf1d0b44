package models

import (
	"encoding/json"
	"fmt"
)

// Experience is one structured entry of a professional history.
type Experience struct {
	Position    string `json:"position"`
	Institution string `json:"institution"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// Experiences holds a record's professional history. Older documents stored
// it as a single free-text string; newer ones as a structured list. Both
// forms are accepted when decoding and the held form is preserved when
// encoding, so legacy documents round-trip unchanged. The shape is decided
// here, once, instead of every renderer branching on it.
type Experiences struct {
	Entries []Experience
	Legacy  string
}

// IsLegacy reports whether the history is still in the free-text form.
func (e Experiences) IsLegacy() bool {
	return len(e.Entries) == 0 && e.Legacy != ""
}

// IsZero reports whether no history of either form is present.
func (e Experiences) IsZero() bool {
	return len(e.Entries) == 0 && e.Legacy == ""
}

func (e Experiences) MarshalJSON() ([]byte, error) {
	if e.IsLegacy() {
		return json.Marshal(e.Legacy)
	}
	if len(e.Entries) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(e.Entries)
}

func (e *Experiences) UnmarshalJSON(data []byte) error {
	*e = Experiences{}

	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch probe.(type) {
	case nil:
		return nil
	case string:
		return json.Unmarshal(data, &e.Legacy)
	case []any:
		return json.Unmarshal(data, &e.Entries)
	default:
		return fmt.Errorf("experiences: unsupported shape %T", probe)
	}
}
