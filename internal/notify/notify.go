package notify

// Notification is the transient success message shown after a create or confirm action.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func New(title, description string) Notification {
	return Notification{Title: title, Description: description}
}
