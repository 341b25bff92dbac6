package api

import "encoding/json"

// ResultSuccess is the result value the inbox query returns on success.
const ResultSuccess = "success"

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// InboxResult represents the inbox query payload.
type InboxResult struct {
	Result  string  `json:"result"`
	Message string  `json:"message"`
	Count   int     `json:"count"`
	Emails  []Email `json:"emails"`
}

// Email represents a single email as returned by the API. Fields pass
// through to callers uninterpreted.
type Email struct {
	ID          string       `json:"id"`
	From        string       `json:"from"`
	To          string       `json:"to"`
	Subject     string       `json:"subject"`
	Text        string       `json:"text"`
	HTML        string       `json:"html"`
	Timestamp   float64      `json:"timestamp"` // milliseconds since epoch
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment represents attachment metadata on an email.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	DownloadURL string `json:"downloadUrl"`
}
