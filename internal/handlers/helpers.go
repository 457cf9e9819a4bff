package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"library-records/internal/memory"
)

// respondJSON serializuje payload do JSON z podanym kodem statusu
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Błąd serializacji odpowiedzi: %v", err)
	}
}

// pathID odczytuje całkowitoliczbowy parametr ścieżki
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("nieprawidłowe ID %q", raw)
	}
	return id, nil
}

// storeErrorStatus mapuje błąd magazynu na kod statusu HTTP
func storeErrorStatus(err error) int {
	switch {
	case errors.Is(err, memory.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, memory.ErrNoCopies), errors.Is(err, memory.ErrInconsistent):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
