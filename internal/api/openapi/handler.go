package openapi

import (
	"log/slog"
	"net/http"
)

// Handler serves the document as JSON.
// The document is rendered once; later changes to doc are not picked up.
func Handler(doc *Document) http.Handler {
	body, err := doc.JSON()
	return rendered(body, err, "application/json")
}

// YAMLHandler serves the document as YAML.
func YAMLHandler(doc *Document) http.Handler {
	body, err := doc.YAML()
	return rendered(body, err, "application/yaml")
}

func rendered(body []byte, renderErr error, contentType string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if renderErr != nil {
			slog.Error("failed to render API document", "error", renderErr, "content_type", contentType)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
}
