package types

// AnnotateRequest is the JSON body accepted by POST /annotate.
type AnnotateRequest struct {
	Rows []string `json:"rows"`
}

// AnnotateResponse carries the annotated rows back, top to bottom.
type AnnotateResponse struct {
	Rows      []string `json:"rows"`
	Mines     int      `json:"mines"`
	RequestID string   `json:"request_id,omitempty"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}
