package router

import "github.com/gorilla/mux"

type RouteRegistrar interface {
	RegisterRoutes(r *mux.Router)
}

func New(registrars ...RouteRegistrar) *mux.Router {
	r := mux.NewRouter()
	for _, registrar := range registrars {
		if registrar != nil {
			registrar.RegisterRoutes(r)
		}
	}
	return r
}
