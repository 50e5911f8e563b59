// Package handler turns typed request handlers into http.HandlerFunc values.
//
// Binders decode the request into R, the handler returns a Response, and any
// bind, handler or render error reaches a single ErrorHandler. Handlers
// signal client-visible failures with HTTPError; its Body is rendered as JSON
// and its Cause is only logged.
//
//	h := handler.Wrap(func(ctx context.Context, req verifyRequest) handler.Response {
//	    return handler.JSON(http.StatusOK, verifyResponse{Valid: ok})
//	}, handler.WithBinders(binder.JSON()))
package handler
