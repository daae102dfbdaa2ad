package core

import "net/http"

// HealthHandler reports liveness. It intentionally checks nothing
// beyond the process being able to serve.
func (a *App) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonOk(w, okHealth)
}
