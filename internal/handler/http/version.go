package http

import (
	"net/http"
)

func (h *Handler) getAppVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.version))
}
