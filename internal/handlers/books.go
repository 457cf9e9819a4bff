package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"library-records/internal/memory"
	"library-records/internal/models"
)

// BooksHandler obsługuje operacje na książkach
type BooksHandler struct {
	store *memory.Client
}

// NewBooksHandler tworzy nowy handler dla książek
func NewBooksHandler(store *memory.Client) *BooksHandler {
	return &BooksHandler{store: store}
}

// ListBooks zwraca listę książek, opcjonalnie filtrowaną po autorze i
// gatunku (GET /api/books?author=&genre=). Gatunek bez autora jest
// ignorowany.
func (h *BooksHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	author := r.URL.Query().Get("author")
	genre := r.URL.Query().Get("genre")

	if author != "" {
		books := h.store.ListBooksByAuthorAndGenre(author, genre)
		log.Printf("Pobrano %d książek dla autora %q i gatunku %q", len(books), author, genre)
		respondJSON(w, http.StatusOK, books)
		return
	}

	respondJSON(w, http.StatusOK, h.store.ListBooks())
}

// GetBook zwraca pojedynczą książkę (GET /api/books/{id})
func (h *BooksHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	book, err := h.store.GetBook(id)
	if err != nil {
		http.Error(w, "Książka nie została znaleziona", storeErrorStatus(err))
		return
	}

	respondJSON(w, http.StatusOK, book)
}

// CreateBook dodaje nową książkę (POST /api/books)
func (h *BooksHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		http.Error(w, "Nieprawidłowe dane książki", http.StatusBadRequest)
		return
	}

	if err := h.store.CreateBook(&book); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Printf("Dodano książkę %d: %s", book.ID, book.Title)
	respondJSON(w, http.StatusCreated, book)
}

// UpdateBook zastępuje książkę o podanym ID (PUT /api/books/{id})
func (h *BooksHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		http.Error(w, "Nieprawidłowe dane książki", http.StatusBadRequest)
		return
	}

	if err := h.store.UpdateBook(id, &book); err != nil {
		http.Error(w, "Książka nie została znaleziona", storeErrorStatus(err))
		return
	}

	log.Printf("Zaktualizowano książkę %d", id)
	respondJSON(w, http.StatusOK, book)
}

// DeleteBook usuwa książkę (DELETE /api/books/{id})
func (h *BooksHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.store.DeleteBook(id); err != nil {
		http.Error(w, "Książka nie została znaleziona", storeErrorStatus(err))
		return
	}

	log.Printf("Usunięto książkę %d", id)
	w.WriteHeader(http.StatusNoContent)
}

// BooksDueOnDate zwraca książki z terminem zwrotu w podanym dniu
// (GET /api/books/dueondate?dueDate=dd/MM/yyyy)
func (h *BooksHandler) BooksDueOnDate(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("dueDate")
	if raw == "" {
		http.Error(w, "Parametr dueDate jest wymagany", http.StatusBadRequest)
		return
	}

	date, err := models.ParseDMY(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	books := h.store.ListBooksDueOn(date)
	log.Printf("Pobrano %d książek z terminem zwrotu %s", len(books), date)
	respondJSON(w, http.StatusOK, books)
}

// CheckAvailability zwraca datę od której książka będzie dostępna
// (GET /api/books/{id}/availability)
func (h *BooksHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := h.store.CheckAvailability(id)
	if err != nil {
		log.Printf("Błąd sprawdzania dostępności książki %d: %v", id, err)
		http.Error(w, err.Error(), storeErrorStatus(err))
		return
	}

	respondJSON(w, http.StatusOK, date)
}
