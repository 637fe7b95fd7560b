package submission

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Request is the POST /dogs submission payload. Exactly one of Image and
// GenerateImageDescription supplies the photo.
type Request struct {
	Name                     string `json:"name"`
	Species                  string `json:"species"`
	Shelter                  string `json:"shelter"`
	City                     string `json:"city"`
	State                    string `json:"state"`
	Description              string `json:"description"`
	Birthday                 string `json:"birthday"`
	WeightInPounds           Weight `json:"weightInPounds"`
	Color                    string `json:"color"`
	ShelterEntryDate         string `json:"shelterEntryDate"`
	Image                    string `json:"image"`
	GenerateImageDescription string `json:"generateImageDescription"`
}

// Weight is a lenient integer field: it accepts a JSON number, a numeric
// string, null, or an empty string (the last three of which count as absent
// and default to 0). A non-numeric value is recorded as invalid rather than
// failing the JSON decode, so the pipeline can reject it as a validation
// error instead of a parse error.
type Weight struct {
	value   int
	invalid bool
}

// Int returns the parsed weight, 0 when absent.
func (w Weight) Int() int { return w.value }

// Invalid reports whether the field held a value that could not be parsed as
// a number.
func (w Weight) Invalid() bool { return w.invalid }

func (w *Weight) UnmarshalJSON(data []byte) error {
	*w = Weight{}
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			w.invalid = true
			return nil
		}
		str = strings.TrimSpace(str)
		if str == "" {
			return nil
		}
		n, err := strconv.Atoi(str)
		if err != nil {
			w.invalid = true
			return nil
		}
		w.value = n
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		w.invalid = true
		return nil
	}
	w.value = int(f)
	return nil
}

func (w Weight) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.value)
}
