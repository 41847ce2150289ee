// Package envelope defines the pluggable interpretation of business
// envelopes: response bodies of the shape {"code":0,"data":...,"message":""}
// where a zero code means success.
//
// The Parser interface makes the envelope convention explicit instead of
// duck-typing on body shape. The default JSONParser matches the
// conventional field names; supply a custom Parser to the client for APIs
// that signal success differently.
package envelope
