package providers

import (
	"net/http"
	"sort"
	"strings"
	"wxledger/internal/structures"
)

type RouterProviderInterface interface {
	Get(url string, handler http.Handler)
	Post(url string, handler http.Handler)
	GetRoutes() []structures.Route
	Handler() http.Handler
}

type RouterProvider struct {
	routes []structures.Route
}

func (rp *RouterProvider) Get(url string, handler http.Handler) {
	rp.add(http.MethodGet, url, handler)
}

func (rp *RouterProvider) Post(url string, handler http.Handler) {
	rp.add(http.MethodPost, url, handler)
}

func (rp *RouterProvider) add(method, url string, handler http.Handler) {
	rp.routes = append(rp.routes, structures.Route{
		Method:  method,
		Url:     url,
		Handler: handler,
	})
}

func (rp *RouterProvider) GetRoutes() []structures.Route {
	return rp.routes
}

// Handler serves every registered route on an exact-path mux. Each matched
// request is tagged with its route url for MetricsMiddleware.
func (rp *RouterProvider) Handler() http.Handler {
	byUrl := make(map[string]*routeHandler)
	var urls []string
	for _, route := range rp.routes {
		rh, ok := byUrl[route.Url]
		if !ok {
			rh = &routeHandler{url: route.Url, methods: make(map[string]http.Handler)}
			byUrl[route.Url] = rh
			urls = append(urls, route.Url)
		}
		rh.methods[route.Method] = route.Handler
	}

	mux := http.NewServeMux()
	for _, url := range urls {
		mux.Handle(url, byUrl[url])
	}
	return mux
}

func NewRouterProvider() RouterProviderInterface {
	return &RouterProvider{}
}

// routeHandler dispatches one url by request method.
type routeHandler struct {
	url     string
	methods map[string]http.Handler
}

func (rh *routeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	markRoute(r, rh.url)

	handler, ok := rh.methods[r.Method]
	if !ok {
		w.Header().Set("Allow", rh.allow())
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	handler.ServeHTTP(w, r)
}

func (rh *routeHandler) allow() string {
	methods := make([]string, 0, len(rh.methods))
	for m := range rh.methods {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
