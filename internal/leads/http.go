package leads

import (
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 20

// HTTPHandler adapts Handler to net/http.
func HTTPHandler(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
			if err != nil {
				// An unreadable body decodes as invalid JSON below.
				h.logger.Warn("failed to read request body", "error", err)
			} else {
				body = data
			}
		}

		resp := h.Handle(r.Context(), Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Body:   body,
		})
		writeResponse(w, resp)
	}
}

func writeResponse(w http.ResponseWriter, resp Response) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
}
