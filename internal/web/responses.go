package web

import (
	"io"
	"net/http"
)

// Fixed error bodies; CRLF terminated like the rest of the plain-text
// surface.
const (
	notFoundBody  = "not found\r\n"
	forbiddenBody = "forbidden\r\n"
	troubleBody   = "sad bear is sad\r\n"
)

func notFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	io.WriteString(w, notFoundBody)
}

func forbidden(w http.ResponseWriter) {
	w.WriteHeader(http.StatusForbidden)
	io.WriteString(w, forbiddenBody)
}

func trouble(w http.ResponseWriter) {
	w.WriteHeader(http.StatusInternalServerError)
	io.WriteString(w, troubleBody)
}
