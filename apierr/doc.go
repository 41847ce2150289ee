// Package apierr defines the single normalized error value every failed
// call settles with, and the factory that builds it from transport
// failures and business (envelope) failures.
//
// All failure kinds share the same *Error shape and are told apart by
// fields, not types:
//
//	HTTP status failure:  Code == TransportStatus != 0
//	Business failure:     TransportStatus in the 2xx range, Code != 0
//	Network failure:      IsNetworkError
//	Timeout:              IsTimeoutError
//
// Cancellation is the one exception: a *CancelError carries only the
// request identifier and a reason, and is recognized via IsCancel.
//
// Recognizing errors:
//
//	resp, err := client.Get(ctx, "/users/42", nil)
//	if apierr.IsHTTPStatus(err, 404) {
//	    // not found
//	}
//	if ae, ok := apierr.As(err); ok && apierr.IsBusiness(err) {
//	    fmt.Println("server said:", ae.Code, ae.Message)
//	}
package apierr
