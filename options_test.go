package testmail

import (
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestDefaultConstants(t *testing.T) {
	if defaultPollInterval != 5*time.Second {
		t.Errorf("defaultPollInterval = %v, want 5s", defaultPollInterval)
	}
	if defaultReceiveTimeout != 240*time.Second {
		t.Errorf("defaultReceiveTimeout = %v, want 240s", defaultReceiveTimeout)
	}
	if defaultTagLength != 8 {
		t.Errorf("defaultTagLength = %d, want 8", defaultTagLength)
	}
}

func TestWithEndpoint(t *testing.T) {
	cfg := &clientConfig{}
	WithEndpoint("https://custom.example.com/graphql")(cfg)
	if cfg.endpoint != "https://custom.example.com/graphql" {
		t.Errorf("endpoint = %s, want https://custom.example.com/graphql", cfg.endpoint)
	}
}

func TestWithHTTPClient(t *testing.T) {
	cfg := &clientConfig{}
	customClient := &http.Client{Timeout: 99 * time.Second}
	WithHTTPClient(customClient)(cfg)
	if cfg.httpClient != customClient {
		t.Error("httpClient was not set")
	}
}

func TestWithPollInterval(t *testing.T) {
	cfg := &clientConfig{}
	WithPollInterval(10 * time.Second)(cfg)
	if cfg.pollInterval != 10*time.Second {
		t.Errorf("pollInterval = %v, want 10s", cfg.pollInterval)
	}
}

func TestWithDefaultTimeout(t *testing.T) {
	cfg := &clientConfig{}
	WithDefaultTimeout(time.Minute)(cfg)
	if cfg.receiveTimeout != time.Minute {
		t.Errorf("receiveTimeout = %v, want 1m", cfg.receiveTimeout)
	}
}

func TestWithTagLength(t *testing.T) {
	cfg := &clientConfig{}
	WithTagLength(12)(cfg)
	if cfg.tagLength != 12 {
		t.Errorf("tagLength = %d, want 12", cfg.tagLength)
	}
}

func TestWithLogger(t *testing.T) {
	cfg := &clientConfig{}
	logger := zap.NewNop()
	WithLogger(logger)(cfg)
	if cfg.logger != logger {
		t.Error("logger was not set")
	}
}

func TestWithAddress(t *testing.T) {
	cfg := &inboxConfig{}
	WithAddress("ns.tag123@inbox.testmail.app")(cfg)
	if cfg.address != "ns.tag123@inbox.testmail.app" {
		t.Errorf("address = %s, want ns.tag123@inbox.testmail.app", cfg.address)
	}
}

func TestWithTag(t *testing.T) {
	cfg := &inboxConfig{}
	WithTag("checkout")(cfg)
	if cfg.tag != "checkout" {
		t.Errorf("tag = %s, want checkout", cfg.tag)
	}
}

func TestWithInbox(t *testing.T) {
	cfg := &receiveConfig{}
	inbox := &Inbox{namespace: "ns", tag: "tag"}
	WithInbox(inbox)(cfg)
	if cfg.inbox != inbox {
		t.Error("inbox was not set")
	}
}

func TestWithTimeout(t *testing.T) {
	cfg := &receiveConfig{}
	WithTimeout(30 * time.Second)(cfg)
	if cfg.timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", cfg.timeout)
	}
}
