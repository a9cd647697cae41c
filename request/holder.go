package request

import "github.com/sable-web/sable/headerbag"

// Request is the minimal capability an incoming request object exposes.
// Implementations are owned by whoever produced them; the holder below never
// inspects the reference, only stores and returns it.
type Request interface {
	Method() string
	Path() string
	Headers() *headerbag.Bag
}

// Holder lends request awareness to any type embedding it.
type Holder struct {
	request Request
}

// Request returns the stored reference, or nil if none was set.
func (h *Holder) Request() Request {
	return h.request
}

// SetRequest stores the reference and returns the holder for chaining.
func (h *Holder) SetRequest(request Request) *Holder {
	h.request = request
	return h
}
