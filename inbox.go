package testmail

import "time"

// Inbox identifies a logical testmail.app inbox: an account namespace, a
// tag within it, and a watermark marking the lower bound for "new"
// emails. Namespace and tag never change after creation; the address is
// always derived from them.
//
// The watermark is advanced by a successful receive with no mutual
// exclusion. Calling ReceiveEmails concurrently on the same Inbox from
// two goroutines races on the watermark; this is a known hazard of the
// test-only design, not a supported pattern.
type Inbox struct {
	namespace string
	tag       string
	watermark int64 // milliseconds since epoch
	client    *Client
}

// Namespace returns the account namespace the inbox belongs to.
func (i *Inbox) Namespace() string {
	return i.namespace
}

// Tag returns the tag identifying the inbox within its namespace.
func (i *Inbox) Tag() string {
	return i.tag
}

// Address returns the inbox email address, derived from namespace and tag.
func (i *Inbox) Address() string {
	return ComposeAddress(i.namespace, i.tag)
}

// Watermark returns the point in time after which emails count as new.
func (i *Inbox) Watermark() time.Time {
	return time.UnixMilli(i.watermark)
}

// valid reports whether the handle carries everything a receive needs.
func (i *Inbox) valid() bool {
	return i != nil && i.namespace != "" && i.tag != "" && i.watermark > 0
}
