package hello

// Message is the value object returned by /hello/data. It has a single comparable field, so two
// messages are equal exactly when their texts are.
type Message struct {
	Text string `json:"text" doc:"Greeting text" example:"Hello data!"`
}

// NewMessage builds a Message holding text.
func NewMessage(text string) Message {
	return Message{Text: text}
}
