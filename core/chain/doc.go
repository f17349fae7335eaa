// Package chain runs middleware in front of a final handler.
//
// Middleware execute in list order. Each one may act on the request, call
// next.Handle to continue, act on the response it gets back, or return
// early, in which case neither the later middleware nor the final handler
// run:
//
//	r := chain.New([]handler.Middleware{session, locale, auth}, final)
//	resp, err := r.Handle(req)
//
// Factory resolves middleware identifiers through the service locator
// before building the runner. Resolved values that are not middleware are
// skipped.
package chain
