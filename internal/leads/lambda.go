package leads

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// LambdaFunc is the entry point signature for API Gateway HTTP API (payload v2).
type LambdaFunc func(ctx context.Context, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// LambdaHandler adapts Handler to API Gateway v2 events. Request-level
// failures are always expressed as HTTP responses, never as Go errors.
func LambdaHandler(h *Handler) LambdaFunc {
	return func(ctx context.Context, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		method := strings.ToUpper(strings.TrimSpace(evt.RequestContext.HTTP.Method))
		path := strings.TrimSpace(evt.RawPath)
		if path == "" {
			path = strings.TrimSpace(evt.RequestContext.HTTP.Path)
		}

		if method == http.MethodGet && (path == "/health" || path == "/_health") {
			return events.APIGatewayV2HTTPResponse{
				StatusCode: http.StatusOK,
				Headers:    map[string]string{"Content-Type": "application/json"},
				Body:       HealthBody,
			}, nil
		}

		body, err := decodeBody(evt)
		if err != nil {
			// Left nil, the body is rejected as invalid JSON.
			h.logger.Warn("failed to decode base64 body", "error", err)
		}

		resp := h.Handle(ctx, Request{Method: method, Path: path, Body: body})
		return events.APIGatewayV2HTTPResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       string(resp.Body),
		}, nil
	}
}

func decodeBody(evt events.APIGatewayV2HTTPRequest) ([]byte, error) {
	if !evt.IsBase64Encoded {
		return []byte(evt.Body), nil
	}
	decoded, err := base64.StdEncoding.DecodeString(evt.Body)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}
