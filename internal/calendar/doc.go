// Package calendar provides a client for interacting with the Google
// Calendar API.
//
// The client covers the event operations exposed by the service (list, get,
// create, update, delete, quick-add), calendar metadata lookups, freebusy
// queries, and BusyIntervals, which feeds the free-slot finder in the
// schedule package. Events marked with "transparent" transparency do not
// block availability and are filtered out of busy data at this layer.
//
// Authentication uses cached OAuth tokens managed by the google package,
// with one client per account.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := calendar.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	events, err := client.ListEvents("primary", time.Now(), time.Now().AddDate(0, 0, 7), "", 20)
//	if err != nil {
//	    log.Fatal(err)
//	}
package calendar
