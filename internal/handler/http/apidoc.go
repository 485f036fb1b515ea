package http

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var openAPIDocument []byte

// RapiDoc renders the embedded OpenAPI document client-side, so the gateway
// serves documentation without any templating dependency.
const apiDocPage = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>ledger-gate API</title>
  <script type="module" src="https://unpkg.com/rapidoc/dist/rapidoc-min.js"></script>
</head>
<body>
  <rapi-doc spec-url="/api-docs/openapi.json" render-style="read" show-header="false"></rapi-doc>
</body>
</html>`

func (h *Handler) getAPIDocPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(apiDocPage))
}

func (h *Handler) getOpenAPIDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(openAPIDocument)
}
