package testmail

import "time"

// Email represents an email received in an inbox. The SDK never
// interprets these fields; they pass through from the service unchanged.
type Email struct {
	ID          string
	From        string
	To          string
	Subject     string
	Text        string
	HTML        string
	ReceivedAt  time.Time
	Attachments []Attachment
}

// Attachment holds attachment metadata. Content is not downloaded by the
// SDK; fetch DownloadURL if the bytes are needed.
type Attachment struct {
	Filename    string
	ContentType string
	DownloadURL string
}
