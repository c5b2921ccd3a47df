package relay

// generateContent wire types, only the fields the relay reads or writes.

type geminiInlineData struct {
	MimeType string `json:"mimeType"`

	Data string `json:"data"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`

	InlineData *geminiInlineData `json:"inlineData,omitempty"`

	// some proxies answer in snake case
	InlineDataSnake *geminiInlineData `json:"inline_data,omitempty"`
}

// image returns the inline image carried by the part, if any.
func (p geminiPart) image() *geminiInlineData {
	for _, d := range []*geminiInlineData{p.InlineData, p.InlineDataSnake} {
		if d != nil && d.Data != "" {
			return d
		}
	}
	return nil
}

type geminiContent struct {
	Role string `json:"role,omitempty"`

	Parts []geminiPart `json:"parts"`
}

type geminiGenerateContentRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`

	FinishReason string `json:"finishReason,omitempty"`
}

type geminiGenerateContentResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}
