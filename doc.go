// Package testmail provides a Go client SDK for testmail.app, a
// transactional-email testing service. It lets end-to-end test suites
// provision disposable inboxes under an account namespace and wait for
// emails sent to them.
//
// Basic usage:
//
//	client, err := testmail.New(apiKey, namespace)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Provision a disposable inbox
//	inbox, err := client.HaveInbox()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Send your email to:", inbox.Address())
//
//	// Wait for it to arrive
//	email, err := client.ReceiveEmail(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Subject:", email.Subject)
package testmail
