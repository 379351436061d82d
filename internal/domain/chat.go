package domain

const ChatMessageTypeUnstructured = "unstructured"

type UnstructuredText struct {
	Text string `json:"text"`
}

type ChatMessage struct {
	Type         string            `json:"type"`
	Unstructured *UnstructuredText `json:"unstructured,omitempty"`
}

// ChatEnvelope is used for both the inbound chat request and the relayed reply.
type ChatEnvelope struct {
	Messages []ChatMessage `json:"messages"`
}

// FirstText returns the first non-empty unstructured text in the envelope.
func (e *ChatEnvelope) FirstText() string {
	for _, m := range e.Messages {
		if m.Unstructured != nil && m.Unstructured.Text != "" {
			return m.Unstructured.Text
		}
	}
	return ""
}

func NewChatReply(text string) *ChatEnvelope {
	return &ChatEnvelope{
		Messages: []ChatMessage{{
			Type:         ChatMessageTypeUnstructured,
			Unstructured: &UnstructuredText{Text: text},
		}},
	}
}
