// Package request provides the immutable request value that flows through
// the dispatch core.
//
// A Request wraps an *http.Request and carries named attributes, typically
// the path parameters of the matched route. Attributes are attached with
// WithAttribute, which returns a copy:
//
//	req := request.New(r)
//	enriched := req.WithAttribute("id", "42")
//	_, ok := req.Attribute("id")      // false
//	v, _ := enriched.Attribute("id")  // "42"
//
// Handlers that need the live request declare a parameter of type
// request.TypeName (see handler.Request).
package request
