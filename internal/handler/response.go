package handler

// Response is the envelope every JSON endpoint wraps its payload in. A
// human-readable message plus the actual data, so clients can always
// rely on the same top-level shape. Data marshals to null when a
// handler has nothing to return (deletes).
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// NewResponse builds a success envelope.
func NewResponse(message string, data interface{}) Response {
	return Response{Message: message, Data: data}
}
