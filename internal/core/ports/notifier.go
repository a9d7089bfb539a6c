package ports

// Notification is one outbound message to an employee, queued on a leave
// decision. Key identifies the triggering transition for dedup purposes.
type Notification struct {
	Recipient string
	Subject   string
	Body      string
	Key       string
}

// Notifier attempts delivery through an external relay. Implementations
// return an error on failure and never panic into the core.
type Notifier interface {
	Send(recipient, subject, body string) error
}
