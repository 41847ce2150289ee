package apiclient

import "github.com/wesleyorama2/apiclient/envelope"

// resolveBody implements the success-path resolution decision:
//
//	skipBusinessCheck  -> raw passthrough, envelope ignored entirely
//	returnData false   -> full envelope
//	returnData true    -> envelope data field (whole body when the body
//	                      carries no envelope to unwrap)
//
// It is pure and never fails; the error path (non-zero envelope code) is
// the caller's branch and must be taken before resolution.
func resolveBody(body []byte, p envelope.Parser, skipBusinessCheck, returnData bool) []byte {
	if skipBusinessCheck || !returnData {
		return body
	}
	return p.Data(body)
}

// effectiveReturnData resolves the per-call override against the instance
// default.
func effectiveReturnData(call *bool, instanceDefault bool) bool {
	if call != nil {
		return *call
	}
	return instanceDefault
}
