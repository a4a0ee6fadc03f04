package handlers

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var clientShell []byte

// ServeShell delivers the client entry page. Everything dynamic flows
// through /api.
func ServeShell(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(clientShell)
}
