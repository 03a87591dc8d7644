package text

// SubmitRequest is the body accepted by POST /submit-text.
// Text is decoded loosely so non-string values can be stored as text.
type SubmitRequest struct {
	Text any `json:"text" swaggertype:"string"`
}

// SubmitResponse is returned by POST /submit-text.
type SubmitResponse struct {
	Success bool `json:"success" example:"true"`
}

// TextResponse is returned by GET /get-text.
type TextResponse struct {
	Text string `json:"text" example:"hello"`
}
