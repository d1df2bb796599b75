package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler отвечает 204 пока сервис жив и 503 после начала остановки,
// чтобы балансировщик успел вывести инстанс из ротации.
type Handler struct {
	isShuttingDown *atomic.Bool
}

func New(isShuttingDown *atomic.Bool) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
