package testmail

import (
	"errors"
	"testing"
)

func TestComposeAddress(t *testing.T) {
	got := ComposeAddress("acme", "signup42")
	want := "acme.signup42@inbox.testmail.app"
	if got != want {
		t.Errorf("ComposeAddress() = %q, want %q", got, want)
	}
}

func TestParseAddress_RoundTrip(t *testing.T) {
	tests := []struct {
		namespace string
		tag       string
	}{
		{"acme", "signup42"},
		{"ns", "tag123"},
		{"ABC123", "x"},
		{"a", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.namespace+"."+tt.tag, func(t *testing.T) {
			addr := ComposeAddress(tt.namespace, tt.tag)
			ns, tag, err := ParseAddress(addr)
			if err != nil {
				t.Fatalf("ParseAddress(%q) error = %v", addr, err)
			}
			if ns != tt.namespace {
				t.Errorf("namespace = %q, want %q", ns, tt.namespace)
			}
			if tag != tt.tag {
				t.Errorf("tag = %q, want %q", tag, tt.tag)
			}
		})
	}
}

func TestParseAddress_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		address string
	}{
		{"not an email", "not-an-email"},
		{"wrong domain", "a@b.com"},
		{"trailing domain", "abc.def@inbox.testmail.app.evil.com"},
		{"leading garbage", "x abc.def@inbox.testmail.app"},
		{"missing tag", "abc@inbox.testmail.app"},
		{"extra dot", "abc.def.ghi@inbox.testmail.app"},
		{"hyphen in tag", "abc.de-f@inbox.testmail.app"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseAddress(tt.address)
			if err == nil {
				t.Fatalf("ParseAddress(%q) expected error", tt.address)
			}
			if !errors.Is(err, ErrInvalidAddressFormat) {
				t.Errorf("error = %v, want ErrInvalidAddressFormat", err)
			}
		})
	}
}

func TestParseAddress_ErrorMentionsAddress(t *testing.T) {
	_, _, err := ParseAddress("bogus")
	var afe *AddressFormatError
	if !errors.As(err, &afe) {
		t.Fatalf("error type = %T, want *AddressFormatError", err)
	}
	if afe.Address != "bogus" {
		t.Errorf("Address = %q, want %q", afe.Address, "bogus")
	}
}
