// Package response provides the response value produced by handlers and
// middleware, a small set of constructors, HTTP-aware errors and the
// emitter that writes a response to the client.
//
// A Response is a render function. Middleware may wrap it to transform
// the output after the handler returns:
//
//	resp, err := next.Handle(req)
//	if err != nil {
//		return nil, err
//	}
//	return response.WithHeader(resp, "X-Served-By", "dispatch"), nil
//
// The emitter renders a Response and converts failures into an error
// response. The HTTPError found in the error chain is written as JSON with
// its own status, code and message; any other error becomes a generic 500:
//
//	e := response.NewEmitter(response.WithEmitterLogger(log))
//	_ = e.Emit(w, r, response.Error(response.ErrNotFound))
package response
