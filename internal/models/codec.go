package models

import "encoding/json"

// StringList is a list column stored as JSON text. Encoding and decoding
// happen only at the repository boundary so parse failures surface in one
// place.
type StringList []string

// Encode returns the JSON text for the list, or nil when the list is empty
// so the column stays NULL.
func (l StringList) Encode() (*string, error) {
	if len(l) == 0 {
		return nil, nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func DecodeStringList(raw *string) (StringList, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var l StringList
	if err := json.Unmarshal([]byte(*raw), &l); err != nil {
		return nil, err
	}
	return l, nil
}
