package domain

// CompletionRequest is one call to the text-completion collaborator.
type CompletionRequest struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Completion is the collaborator's answer. TokensUsed is 0 when the
// provider does not report usage.
type Completion struct {
	Text       string
	TokensUsed int
}
