// Package handler defines the capabilities exchanged by the dispatch core:
// handlers, middleware and route actions together with the parameter
// descriptors actions declare.
//
// # Handlers and middleware
//
// A Handler turns a request into a response. A Middleware receives the
// request and the remainder of the chain and decides whether to delegate:
//
//	auth := handler.MiddlewareFunc(func(req *request.Request, next handler.Handler) (response.Response, error) {
//		if req.HTTP().Header.Get("Authorization") == "" {
//			return response.Error(response.ErrUnauthorized), nil
//		}
//		return next.Handle(req)
//	})
//
// # Actions
//
// A route action is one of:
//
//   - *Func or any other Invokable value, used as is;
//   - Class, the identifier of a service whose instance is Invokable;
//   - MethodRef, the identifier of a Controller service plus an action name.
//
// Actions declare their parameters explicitly; the resolver binds route
// parameters, services and the live request by name and passes them to
// the action in declaration order:
//
//	show := handler.NewFunc(func(args handler.Args) (response.Response, error) {
//		company := handler.Arg[string](args, 0)
//		repo := handler.Arg[*Repo](args, 1)
//		req := handler.Arg[*request.Request](args, 2)
//		...
//	}, handler.String("company"), handler.Service[*Repo]("repo"), handler.Request("req"))
package handler
