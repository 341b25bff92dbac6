package testmail

import (
	"fmt"
	"regexp"
)

// addressDomain is the fixed domain all testmail.app inboxes live under.
// It is part of the service contract, not configurable.
const addressDomain = "inbox.testmail.app"

// addressPattern requires a full match: namespace, a literal dot, tag,
// then the literal domain. Partial or substring matches are rejected.
var addressPattern = regexp.MustCompile(`^([A-Za-z0-9]+)\.([A-Za-z0-9]+)@inbox\.testmail\.app$`)

// tagPattern validates caller-supplied tags.
var tagPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ComposeAddress returns the inbox address for a namespace and tag.
func ComposeAddress(namespace, tag string) string {
	return fmt.Sprintf("%s.%s@%s", namespace, tag, addressDomain)
}

// ParseAddress splits an inbox address into its namespace and tag.
// It returns ErrInvalidAddressFormat if the address does not match the
// {namespace}.{tag}@inbox.testmail.app pattern exactly.
func ParseAddress(address string) (namespace, tag string, err error) {
	m := addressPattern.FindStringSubmatch(address)
	if len(m) != 3 {
		return "", "", &AddressFormatError{Address: address}
	}
	return m[1], m[2], nil
}
