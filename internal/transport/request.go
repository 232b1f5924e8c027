package transport

import (
	"bytes"
	"encoding/json"

	"github.com/agentstation/rmbrowse/pkg/errors"
)

// apiError is the body the API sends with most 4xx responses.
type apiError struct {
	Error string `json:"error"`
}

// CheckStatus returns an HTTPStatusError for responses outside 2xx.
func CheckStatus(resp *Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	var body apiError
	msg := ""
	if json.Unmarshal(resp.Body, &body) == nil {
		msg = body.Error
	}
	return errors.NewHTTPStatusError(resp.URL, resp.StatusCode, msg)
}

// Decode checks the status of resp and decodes its JSON body into target.
// resource names the expected payload in decode errors.
func Decode(resp *Response, resource string, target any) error {
	if err := CheckStatus(resp); err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body, target); err != nil {
		return errors.WrapDecode(resource, err)
	}
	return nil
}

// IsArray reports whether the body holds a JSON array.
func IsArray(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
