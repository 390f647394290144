package botx

import "context"

// Router dispatches requests to handlers by the command word.
type Router struct {
	notFound    Handler
	handlers    map[string]Handler
	middlewares []Middleware
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]Handler),
		notFound: NotFound,
	}
}

// Add adds a handler of the command.
func (r *Router) Add(cmd string, h Handler) {
	r.handlers[cmd] = h
}

// Use applies middleware to all handlers.
func (r *Router) Use(mvs ...Middleware) *Router {
	r.middlewares = append(r.middlewares, mvs...)
	return r
}

// Group adds handlers of the nested router, wrapped with its middlewares.
func (r *Router) Group(f func(rtr *Router)) {
	nested := NewRouter()
	f(nested)

	for cmd, h := range nested.handlers {
		r.Add(cmd, chain(h, nested.middlewares))
	}
}

// NotFound sets a handler for requests without a matching command.
func (r *Router) NotFound(h Handler) {
	r.notFound = h
}

// Commands returns the registered commands.
func (r *Router) Commands() []string {
	res := make([]string, 0, len(r.handlers))
	for cmd := range r.handlers {
		res = append(res, cmd)
	}
	return res
}

// Handle handles request.
func (r *Router) Handle(ctx context.Context, req Request) ([]Response, error) {
	if req.Command() == "" {
		return nil, nil
	}

	h, ok := r.handlers[req.Command()]
	if !ok {
		h = r.notFound
	}

	return chain(h, r.middlewares)(ctx, req)
}

func chain(h Handler, mvs []Middleware) Handler {
	for i := len(mvs) - 1; i >= 0; i-- {
		h = mvs[i](h)
	}
	return h
}
