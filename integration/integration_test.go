//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"
	testmail "github.com/testmail-app/client-go"
)

var (
	apiKey    string
	namespace string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("TESTMAIL_API_KEY")
	namespace = os.Getenv("TESTMAIL_NAMESPACE")

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: TESTMAIL_API_KEY not set\n")
		os.Exit(0)
	}

	if namespace == "" {
		os.Stderr.WriteString("Skipping integration tests: TESTMAIL_NAMESPACE not set\n")
		os.Exit(0)
	}

	os.Stderr.WriteString("Running integration tests against testmail.app\n")

	os.Exit(m.Run())
}

func newClient(t *testing.T) *testmail.Client {
	t.Helper()

	client, err := testmail.New(apiKey, namespace,
		testmail.WithPollInterval(2*time.Second),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return client
}

func TestIntegration_HaveInbox(t *testing.T) {
	client := newClient(t)

	inbox, err := client.HaveInbox()
	if err != nil {
		t.Fatalf("HaveInbox() error = %v", err)
	}

	if !strings.HasPrefix(inbox.Address(), namespace+".") {
		t.Errorf("Address() = %q, want %q prefix", inbox.Address(), namespace+".")
	}
}

func TestIntegration_ReceiveTimesOutOnQuietInbox(t *testing.T) {
	client := newClient(t)

	// Nothing sends to this inbox, so a short receive must time out.
	if _, err := client.HaveInbox(); err != nil {
		t.Fatalf("HaveInbox() error = %v", err)
	}

	_, err := client.ReceiveEmails(context.Background(),
		testmail.WithTimeout(4*time.Second))
	if !errors.Is(err, testmail.ErrEmailTimeout) {
		t.Errorf("ReceiveEmails() error = %v, want ErrEmailTimeout", err)
	}
}

func TestIntegration_BadKeyFailsFast(t *testing.T) {
	client, err := testmail.New("definitely-not-a-key", namespace,
		testmail.WithPollInterval(time.Second),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := client.HaveInbox(); err != nil {
		t.Fatalf("HaveInbox() error = %v", err)
	}

	_, err = client.ReceiveEmails(context.Background(),
		testmail.WithTimeout(10*time.Second))
	if err == nil {
		t.Fatal("expected error with an invalid API key")
	}
}
