package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"library-records/internal/memory"
	"library-records/internal/models"
)

// RecordsHandler obsługuje wypożyczenia i zwroty
type RecordsHandler struct {
	store *memory.Client
}

// NewRecordsHandler tworzy nowy handler dla wypożyczeń
func NewRecordsHandler(store *memory.Client) *RecordsHandler {
	return &RecordsHandler{store: store}
}

// ListRecords zwraca wszystkie wypożyczenia (GET /api/borrowing-records)
func (h *RecordsHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.ListRecords())
}

// GetRecord zwraca pojedyncze wypożyczenie (GET /api/borrowing-records/{id})
func (h *RecordsHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.store.GetRecord(id)
	if err != nil {
		http.Error(w, "Wypożyczenie nie zostało znalezione", storeErrorStatus(err))
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// BorrowBook rejestruje wypożyczenie książki (POST /api/borrow). Daty podane
// przez klienta są nadpisywane datami serwera.
func (h *RecordsHandler) BorrowBook(w http.ResponseWriter, r *http.Request) {
	var record models.BorrowingRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, "Nieprawidłowe dane wypożyczenia", http.StatusBadRequest)
		return
	}

	if record.BookID == 0 || record.MemberID == 0 {
		http.Error(w, "ID książki i czytelnika są wymagane", http.StatusBadRequest)
		return
	}

	if err := h.store.BorrowBook(&record); err != nil {
		log.Printf("Błąd wypożyczania książki %d: %v", record.BookID, err)
		http.Error(w, err.Error(), storeErrorStatus(err))
		return
	}

	log.Printf("Wypożyczono książkę %d dla czytelnika %d, termin zwrotu %s",
		record.BookID, record.MemberID, record.DueDate)
	respondJSON(w, http.StatusCreated, record)
}

// ReturnBook odnotowuje zwrot książki z dzisiejszą datą
// (PUT /api/return/{recordId})
func (h *RecordsHandler) ReturnBook(w http.ResponseWriter, r *http.Request) {
	recordID, err := pathID(r, "recordId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.store.ReturnBook(recordID, models.Today())
	if err != nil {
		log.Printf("Błąd zwrotu wypożyczenia %d: %v", recordID, err)
		http.Error(w, err.Error(), storeErrorStatus(err))
		return
	}

	log.Printf("Zwrócono wypożyczenie %d", recordID)
	respondJSON(w, http.StatusOK, record)
}
