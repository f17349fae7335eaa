// Package container provides the service locator consumed by the dispatch
// core and a concurrency-safe implementation of it.
//
// Services are registered by identifier. The generic helpers derive the
// identifier from the type, which is also how handler parameters declared
// with handler.Service[T] are looked up:
//
//	c := container.New()
//	_ = container.RegisterValue(c, cfg)
//	_ = container.Register(c, func(l container.Locator) (*Repo, error) {
//		db, err := container.Resolve[*sql.DB](l)
//		if err != nil {
//			return nil, err
//		}
//		return NewRepo(db), nil
//	})
//
//	repo, err := container.Resolve[*Repo](c)
//
// Lookup failures are reported as ErrNotFound; factory failures and type
// mismatches as ErrResolution.
package container
