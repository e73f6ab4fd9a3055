package pkg

// TurnRole describes who authored a conversation turn.  There are only two
// roles: the pregnant person writing to the bot and the assistant itself.
type TurnRole string

const (
	RoleUser      TurnRole = "user"
	RoleAssistant TurnRole = "assistant"
)

// Turn is a single entry of a session's rolling conversation history.  Turns
// are immutable once appended.
type Turn struct {
	Role TurnRole `json:"role"`
	Text string   `json:"text"`
}

// IncomingMessage is the payload the transport gateway posts to the webhook
// for every inbound update.  RawText carries the message text for plain text
// messages; RawCaption carries the caption when the update is an attachment.
type IncomingMessage struct {
	UserID        string `json:"user_id"`
	RawText       string `json:"text"`
	RawCaption    string `json:"caption"`
	HasAttachment bool   `json:"has_attachment"`
}

// Keyboard describes a single-choice reply keyboard the transport should
// render next to a reply.  Rows holds one label per row.
type Keyboard struct {
	Rows            []string `json:"rows,omitempty"`
	ResizeKeyboard  bool     `json:"resize_keyboard,omitempty"`
	OneTimeKeyboard bool     `json:"one_time_keyboard,omitempty"`
}

// Reply is one outbound message for the transport to deliver.  A single
// inbound message can produce several replies (for example a standalone
// safety alert followed by the generated answer).  A nil Keyboard means
// "leave the current keyboard alone"; RemoveKeyboard asks the transport to
// take any previous keyboard down.
type Reply struct {
	Text           string    `json:"text"`
	Keyboard       *Keyboard `json:"keyboard,omitempty"`
	RemoveKeyboard bool      `json:"remove_keyboard,omitempty"`
}

// WebhookResponse is the JSON body returned to the transport gateway after
// an inbound message has been processed.
type WebhookResponse struct {
	Status  string  `json:"status"`
	Replies []Reply `json:"replies"`
}
