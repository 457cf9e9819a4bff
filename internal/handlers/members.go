package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"library-records/internal/memory"
	"library-records/internal/models"
)

// MembersHandler obsługuje operacje na czytelnikach
type MembersHandler struct {
	store *memory.Client
}

// NewMembersHandler tworzy nowy handler dla czytelników
func NewMembersHandler(store *memory.Client) *MembersHandler {
	return &MembersHandler{store: store}
}

// ListMembers zwraca wszystkich czytelników (GET /api/members)
func (h *MembersHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.ListMembers())
}

// GetMember zwraca pojedynczego czytelnika (GET /api/members/{id})
func (h *MembersHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	member, err := h.store.GetMember(id)
	if err != nil {
		http.Error(w, "Czytelnik nie został znaleziony", storeErrorStatus(err))
		return
	}

	respondJSON(w, http.StatusOK, member)
}

// CreateMember dodaje nowego czytelnika (POST /api/members)
func (h *MembersHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var member models.Member
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		http.Error(w, "Nieprawidłowe dane czytelnika", http.StatusBadRequest)
		return
	}

	if err := h.store.CreateMember(&member); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Printf("Dodano czytelnika %d: %s", member.ID, member.Name)
	respondJSON(w, http.StatusCreated, member)
}

// UpdateMember zastępuje czytelnika o podanym ID (PUT /api/members/{id})
func (h *MembersHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var member models.Member
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		http.Error(w, "Nieprawidłowe dane czytelnika", http.StatusBadRequest)
		return
	}

	if err := h.store.UpdateMember(id, &member); err != nil {
		http.Error(w, "Czytelnik nie został znaleziony", storeErrorStatus(err))
		return
	}

	log.Printf("Zaktualizowano czytelnika %d", id)
	respondJSON(w, http.StatusOK, member)
}

// DeleteMember usuwa czytelnika (DELETE /api/members/{id})
func (h *MembersHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.store.DeleteMember(id); err != nil {
		http.Error(w, "Czytelnik nie został znaleziony", storeErrorStatus(err))
		return
	}

	log.Printf("Usunięto czytelnika %d", id)
	w.WriteHeader(http.StatusNoContent)
}
