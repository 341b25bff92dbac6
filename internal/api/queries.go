package api

import "context"

// inboxQuery lists emails received in an inbox after a timestamp.
// Inputs travel as GraphQL variables so namespace and tag never get
// spliced into the query document.
const inboxQuery = `query inbox($namespace: String!, $tag: String!, $timestampFrom: Float) {
  inbox(namespace: $namespace, tag: $tag, timestamp_from: $timestampFrom) {
    result
    message
    count
    emails {
      id
      from
      to
      subject
      text
      html
      timestamp
      attachments {
        filename
        contentType
        downloadUrl
      }
    }
  }
}`

// InboxQuery holds the parameters for listing inbox emails.
type InboxQuery struct {
	Namespace     string
	Tag           string
	TimestampFrom int64 // milliseconds since epoch
}

// InboxEmails lists emails for the given namespace and tag received at or
// after TimestampFrom.
func (c *Client) InboxEmails(ctx context.Context, q InboxQuery) (*InboxResult, error) {
	variables := map[string]any{
		"namespace":     q.Namespace,
		"tag":           q.Tag,
		"timestampFrom": q.TimestampFrom,
	}

	var data struct {
		Inbox InboxResult `json:"inbox"`
	}
	if err := c.Do(ctx, inboxQuery, variables, &data); err != nil {
		return nil, err
	}

	return &data.Inbox, nil
}
