// Package routing defines the Router boundary consumed by the dispatcher
// and provides Table, a Router backed by the chi routing tree.
//
//	t := routing.NewTable()
//	_, _ = t.Get("/companies/{company}", handler.Method("companies", "show"), "request_id")
//	_ = t.Group("/admin", func(g *routing.Group) error {
//		_, err := g.Get("/stats", statsAction)
//		return err
//	}, "auth")
//
//	matched, err := t.Resolve(req)
//	if errors.Is(err, routing.ErrRouteNotFound) {
//		// fallback
//	}
//
// Path parameters are exposed on MatchedRoute.Params as strings.
package routing
