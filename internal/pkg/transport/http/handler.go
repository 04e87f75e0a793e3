package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
)

type DecodeRequestFunc func(ctx context.Context, req *http.Request) (interface{}, error)

type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// DecodeRequest decodes a JSON body into T. When T implements render.Binder
// its Bind validation runs as part of decoding, so invalid requests fail
// before reaching the endpoint.
func DecodeRequest[T any](_ context.Context, req *http.Request) (interface{}, error) {
	request := new(T)

	if binder, ok := any(request).(render.Binder); ok {
		if err := render.Bind(req, binder); err != nil {
			return nil, fmt.Errorf("bind request: %w", err)
		}

		return request, nil
	}

	if err := render.DecodeJSON(req.Body, request); err != nil {
		return nil, fmt.Errorf("decode request body: %w", err)
	}

	return request, nil
}

// MakeHandlerFunc adapts a go-kit endpoint into an http.HandlerFunc with the
// given decode/encode pair. All errors flow through ErrorResponse.
func MakeHandlerFunc(endpt endpoint.Endpoint,
	decode DecodeRequestFunc, encode EncodeResponseFunc) http.HandlerFunc {

	return func(respWriter http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		request, err := decode(ctx, req)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		response, err := endpt(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		if err := encode(ctx, respWriter, response); err != nil {
			ErrorResponse(ctx, err, respWriter)
		}
	}
}
