// Package apiclient is a thin, envelope-aware HTTP client facade. It
// wraps net/http with response unwrapping, business-error normalization,
// a pluggable error-handler chain, and identifier-scoped cancellation.
//
// Servers following the conventional envelope
//
//	{"code": 0, "data": {...}, "message": ""}
//
// signal business failure with a non-zero code even on HTTP 200. The
// client turns both transport failures (network, timeout, non-2xx) and
// business failures into one normalized *apierr.Error, routes it through
// an ordered chain of registered handlers, and fails the call with it.
//
// Basic usage:
//
//	client := apiclient.NewClient(
//	    apiclient.WithBaseURL("https://api.example.com"),
//	    apiclient.WithTimeout(5*time.Second),
//	)
//
//	resp, err := client.Get(ctx, "/users/42", nil)
//	if err != nil {
//	    // err is *apierr.Error; reporting already ran through the chain
//	    return err
//	}
//
//	var user User
//	if err := resp.Decode(&user); err != nil { // unwrapped data field
//	    return err
//	}
//
// Per-call behavior lives on the fluent Request builder:
//
//	resp, err := client.Do(ctx, apiclient.NewRequest("GET", "/search").
//	    WithQueryParam("q", "term").
//	    WithReturnData(false).     // keep the full envelope
//	    WithHideErrorTip().        // fail silently, no reporting
//	    WithRequestID("search").   // cancelable via client.Cancel
//	    WithCancelPrevious())      // abort the previous "search" call
//
// Error handling:
//
//	unregister := client.RegisterErrorHandler(apiclient.NewErrorHandler(
//	    func(e *apierr.Error) bool { return e.Code == 1001 },
//	    func(ctx context.Context, e *apierr.Error) bool {
//	        showBalanceDialog()
//	        return true // claimed: stop the chain, skip the default message
//	    },
//	))
//	defer unregister()
//
// Thread safety: Client is safe for concurrent use; each Request is for a
// single call.
package apiclient
