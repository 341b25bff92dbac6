package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	testmail "github.com/testmail-app/client-go"
)

// testhelper is a small shim used by cross-suite shell tests. Every
// command prints a single JSON document on stdout.
func main() {
	if len(os.Args) < 2 {
		fatal("usage: testhelper <command> [args]")
	}

	switch os.Args[1] {
	case "new-inbox":
		newInbox()
	case "parse-address":
		if len(os.Args) < 3 {
			fatal("usage: testhelper parse-address <address>")
		}
		parseAddress(os.Args[2])
	case "receive":
		if len(os.Args) < 3 {
			fatal("usage: testhelper receive <address> [timeout-seconds]")
		}
		receive(os.Args[2], os.Args[3:])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func newClient() *testmail.Client {
	opts := []testmail.Option{}
	if endpoint := os.Getenv("TESTMAIL_ENDPOINT"); endpoint != "" {
		opts = append(opts, testmail.WithEndpoint(endpoint))
	}

	client, err := testmail.New(
		os.Getenv("TESTMAIL_API_KEY"),
		os.Getenv("TESTMAIL_NAMESPACE"),
		opts...,
	)
	if err != nil {
		fatal("create client: %v", err)
	}
	return client
}

func newInbox() {
	inbox, err := newClient().HaveInbox()
	if err != nil {
		fatal("create inbox: %v", err)
	}

	emit(map[string]any{
		"namespace": inbox.Namespace(),
		"tag":       inbox.Tag(),
		"address":   inbox.Address(),
		"watermark": inbox.Watermark().UnixMilli(),
	})
}

func parseAddress(address string) {
	namespace, tag, err := testmail.ParseAddress(address)
	if err != nil {
		fatal("parse address: %v", err)
	}

	emit(map[string]any{
		"namespace": namespace,
		"tag":       tag,
	})
}

func receive(address string, rest []string) {
	client := newClient()

	inbox, err := client.HaveInbox(testmail.WithAddress(address))
	if err != nil {
		fatal("inbox from address: %v", err)
	}

	opts := []testmail.ReceiveOption{testmail.WithInbox(inbox)}
	if len(rest) > 0 {
		seconds, err := strconv.Atoi(rest[0])
		if err != nil {
			fatal("invalid timeout: %v", err)
		}
		opts = append(opts, testmail.WithTimeout(time.Duration(seconds)*time.Second))
	}

	emails, err := client.ReceiveEmails(context.Background(), opts...)
	if err != nil {
		fatal("receive: %v", err)
	}

	out := make([]map[string]any, 0, len(emails))
	for _, e := range emails {
		out = append(out, map[string]any{
			"from":     e.From,
			"subject":  e.Subject,
			"text":     e.Text,
			"received": e.ReceivedAt.UnixMilli(),
		})
	}
	emit(out)
}

func emit(v any) {
	if err := json.NewEncoder(os.Stdout).Encode(v); err != nil {
		fatal("encode output: %v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
