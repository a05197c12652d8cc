package batch

// Request describes one operation inside a multiplexed API call.
type Request struct {
	// Method is the HTTP method of the operation (GET, POST, DELETE).
	Method string `json:"method"`

	// RelativeURL is the resource path relative to the API root,
	// for example "me/messages".
	RelativeURL string `json:"relative_url"`

	// Body holds the operation parameters for POST operations.
	Body map[string]interface{} `json:"body,omitempty"`

	// Name tags the operation so later operations can reference its
	// result through DependsOn.
	Name string `json:"name,omitempty"`

	// DependsOn orders this operation after the named one.
	DependsOn string `json:"depends_on,omitempty"`
}

// Response is the outcome of one Request, aligned to the request array's
// order.
type Response struct {
	// Code is the HTTP status code of the individual operation.
	Code int `json:"code"`

	// Body is the raw response body, expected to be JSON-encoded.
	Body string `json:"body"`

	// Headers are the individual operation's response headers, present
	// only when the batch call asked for them.
	Headers []Header `json:"headers,omitempty"`
}

// Header is a single response header of a batch operation.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Succeeded reports whether the operation completed with a 2xx status.
func (r Response) Succeeded() bool {
	return r.Code >= 200 && r.Code < 300
}
