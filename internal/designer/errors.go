package designer

import "net/http"

// Error is the structured failure a save-design call can return: a stable
// kind string for the front-end, a human message, and an HTTP status.
type Error struct {
	Kind    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

const (
	KindNotVendor   = "not_vendor"
	KindBadRequest  = "bad_request"
	KindPriceTooLow = "price_too_low"
	KindBadImage    = "bad_image"
	KindUploadError = "upload_error"
)

func ErrNotVendor() *Error {
	return &Error{Kind: KindNotVendor, Message: "User is not a vendor", Status: http.StatusForbidden}
}

func ErrBadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg, Status: http.StatusBadRequest}
}

func ErrPriceTooLow(msg string) *Error {
	return &Error{Kind: KindPriceTooLow, Message: msg, Status: http.StatusBadRequest}
}

func ErrBadImage(msg string) *Error {
	return &Error{Kind: KindBadImage, Message: msg, Status: http.StatusBadRequest}
}

func ErrUpload(msg string) *Error {
	return &Error{Kind: KindUploadError, Message: msg, Status: http.StatusInternalServerError}
}
