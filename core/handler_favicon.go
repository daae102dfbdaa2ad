package core

import "net/http"

// FaviconHandler answers /favicon.ico with 204 No Content. It keeps
// browser noise out of the 404 logs without serving an actual icon.
func FaviconHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
