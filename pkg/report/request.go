package report

import (
	"bytes"
	"encoding/json"
)

// Text is a form field that accepts a JSON string or number.
// Any other JSON type, including null, decodes as empty text.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*t = ""
	if len(data) == 0 {
		return nil
	}

	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*t = Text(s)
		}
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err == nil {
			*t = Text(n.String())
		}
	}
	return nil
}

// String returns the field as a plain string.
func (t Text) String() string {
	return string(t)
}

// Contact is the person who filled in the form.
type Contact struct {
	Naam  Text `json:"naam"`
	Email Text `json:"email"`
}

// UnmarshalJSON accepts only objects; anything else leaves Contact empty.
func (c *Contact) UnmarshalJSON(data []byte) error {
	type plain Contact
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*c = Contact{}
		return nil
	}
	*c = Contact(p)
	return nil
}

// Result is the valuation range shown in the report.
type Result struct {
	WaardeMin Text `json:"waarde_min"`
	WaardeMax Text `json:"waarde_max"`
}

// UnmarshalJSON accepts only objects; anything else leaves Result empty.
func (r *Result) UnmarshalJSON(data []byte) error {
	type plain Result
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*r = Result{}
		return nil
	}
	*r = Result(p)
	return nil
}

// Request is the lead form submission posted to the report endpoint.
type Request struct {
	Email     Text    `json:"email"`
	Subject   Text    `json:"subject"`
	CTAURL    Text    `json:"cta_url"`
	Contact   Contact `json:"contact"`
	Resultaat Result  `json:"resultaat"`
}

// Decode parses a report body. The body may be a JSON object or a JSON
// string whose content is a JSON object. Anything else yields an empty
// Request.
func Decode(body []byte) Request {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Request{}
	}

	if body[0] == '"' {
		var inner string
		if err := json.Unmarshal(body, &inner); err != nil {
			return Request{}
		}
		body = bytes.TrimSpace([]byte(inner))
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return Request{}
	}
	return req
}
