package routerhelper

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup mounts handlers under a shared path prefix.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	return &RouteGroup{
		router: router,
		prefix: prefix,
	}
}

func wrap(handler http.HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		handler(w, r)
	}
}

func (g *RouteGroup) GET(path string, handler http.HandlerFunc) {
	g.router.GET(g.prefix+path, wrap(handler))
}

func (g *RouteGroup) POST(path string, handler http.HandlerFunc) {
	g.router.POST(g.prefix+path, wrap(handler))
}

func (g *RouteGroup) DELETE(path string, handler http.HandlerFunc) {
	g.router.DELETE(g.prefix+path, wrap(handler))
}
