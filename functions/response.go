package functions

import "errors"

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const unknownError = "Unknown error"

// Response is the uniform envelope returned for every call. On success
// Content holds the payload; on error Content is null and Error holds the
// message.
type Response struct {
	Status  Status `json:"status"`
	Content any    `json:"content"`
	Error   string `json:"error,omitempty"`

	// Err is the failure behind an error response. It is not serialized and
	// lets transports map failures to their own status codes.
	Err error `json:"-"`
}

func Success(content any) Response {
	return Response{
		Status:  StatusSuccess,
		Content: content,
	}
}

func Failure(err error) Response {
	if err == nil {
		err = errors.New(unknownError)
	}
	msg := err.Error()
	if msg == "" {
		msg = unknownError
	}
	return Response{
		Status:  StatusError,
		Content: nil,
		Error:   msg,
		Err:     err,
	}
}

func (r Response) OK() bool { return r.Status == StatusSuccess }
