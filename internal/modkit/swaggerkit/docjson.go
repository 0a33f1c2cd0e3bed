package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"yamlgate/internal/platform/config"
	docs "yamlgate/internal/services/api/docs"
)

var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// serveDocJSON serves the generated document lifted to OAS 3.0.3 with the error envelope filled in
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "openapi document parse error", http.StatusInternalServerError)
			return
		}
		normalize(spec, "/api/v1")
		if suffix := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", ""); suffix != "" {
			info := child(spec, "info")
			title, _ := info["title"].(string)
			info["title"] = strings.TrimSpace(title + " " + suffix)
		}
		writeSpec(w, spec)
	}
}

func writeSpec(w http.ResponseWriter, spec map[string]any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(spec)
}

// normalize forces openapi 3.0.3, the ui cannot render 3.1, and adds the shared error responses
func normalize(spec map[string]any, base string) {
	delete(spec, "swagger")
	spec["openapi"] = "3.0.3"
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": base}}
	}

	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = map[string]any{
			"type": "object",
			"properties": map[string]any{
				"status_code": map[string]any{"type": "integer"},
				"status":      map[string]any{"type": "string"},
				"code":        map[string]any{"type": "integer"},
				"error":       map[string]any{"type": "string"},
				"field":       map[string]any{"type": "string"},
				"request_id":  map[string]any{"type": "string"},
			},
			"required": []any{"status_code", "status"},
		}
	}

	defaults := map[string]string{"400": "Bad Request", "500": "Internal Server Error"}
	paths, _ := spec["paths"].(map[string]any)
	for _, p := range paths {
		ops, _ := p.(map[string]any)
		for _, op := range ops {
			o, ok := op.(map[string]any)
			if !ok {
				continue
			}
			resps := child(o, "responses")
			for code, text := range defaults {
				if _, ok := resps[code]; !ok {
					resps[code] = errorResponse(text)
				}
			}
		}
	}
}

func errorResponse(desc string) map[string]any {
	return map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
			},
		},
	}
}

// child returns m[key] as a map, creating it when missing
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}
