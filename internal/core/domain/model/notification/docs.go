// Package notification models the messages raised by order lifecycle events:
// typed, prioritized, addressed to roles and/or specific users, with a
// shared read flag backing the dashboard inboxes.
package notification
