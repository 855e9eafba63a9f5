package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"settingsd/pkg/types"
)

// streamEvents writes one NDJSON line per settings change until the client
// disconnects or the server shuts down. Changes are edge-triggered: bursts
// that arrive while a line is being written coalesce into one event.
func streamEvents(w http.ResponseWriter, r *http.Request, svc Service) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSONError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	changed := make(chan struct{}, 1)
	unsub := svc.Subscribe(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer func() {
		unsub()
		SetListenerCount(svc.ListenerCount())
	}()
	SetListenerCount(svc.ListenerCount())

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()

	enc := json.NewEncoder(w)
	var seq uint64
	for {
		select {
		case <-ctx.Done():
			return
		case <-changed:
			seq++
			ev := types.ChangeEvent{Seq: seq, UnixTime: time.Now().Unix()}
			if err := enc.Encode(ev); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
