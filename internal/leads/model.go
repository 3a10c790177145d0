package leads

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultSubjects fills the subjects column when the form leaves it blank.
const DefaultSubjects = "Not Provided"

// Lead is a validated submission with its derived timestamp. It lives for a
// single request and is never stored by this service.
type Lead struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Subjects    string `json:"subjects"`
	SubmittedAt string `json:"submitted_at"`
}

// Row returns the spreadsheet row in column order.
func (l *Lead) Row() []string {
	return []string{l.Name, l.Email, l.Phone, l.Subjects, l.SubmittedAt}
}

// CreateLeadRequest represents the request body for submitting a lead
type CreateLeadRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Subjects Subjects `json:"subjects"`
}

// Validate checks presence only; email format is deliberately not inspected.
func (r *CreateLeadRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Phone == "" {
		return ErrMissingRequired
	}
	return nil
}

// SubjectsOrDefault returns the submitted subjects or DefaultSubjects.
func (r *CreateLeadRequest) SubjectsOrDefault() string {
	if r.Subjects == "" {
		return DefaultSubjects
	}
	return string(r.Subjects)
}

// Subjects accepts either a single string or a list of strings, which
// multi-select form widgets send. Lists are joined with ", ".
type Subjects string

func (s *Subjects) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var many []string
		if err := json.Unmarshal(data, &many); err != nil {
			return fmt.Errorf("leads: subjects list: %w", err)
		}
		kept := many[:0]
		for _, item := range many {
			if item = strings.TrimSpace(item); item != "" {
				kept = append(kept, item)
			}
		}
		*s = Subjects(strings.Join(kept, ", "))
		return nil
	}
	single, err := textValue(data)
	if err != nil {
		return fmt.Errorf("leads: subjects: %w", err)
	}
	*s = Subjects(single)
	return nil
}

// decodeRequest reads the form fields by their exact lowercase keys. Numbers
// are kept as their literal text and a zero counts as absent.
func decodeRequest(body []byte) (*CreateLeadRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}

	var req CreateLeadRequest
	for key, dst := range map[string]*string{"name": &req.Name, "email": &req.Email, "phone": &req.Phone} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		text, err := textValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBody, key, err)
		}
		*dst = text
	}
	if raw, ok := fields["subjects"]; ok {
		if err := req.Subjects.UnmarshalJSON(raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
		}
	}
	return &req, nil
}

func textValue(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case bytes.Equal(raw, []byte("null")):
		return "", nil
	case len(raw) > 0 && raw[0] == '"':
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	if f, err := n.Float64(); err == nil && f == 0 {
		return "", nil
	}
	return n.String(), nil
}
