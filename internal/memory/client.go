package memory

import (
	"errors"
	"sync"

	"library-records/internal/models"
)

// Błędy zgłaszane przez magazyn danych.
var (
	// ErrNotFound oznacza że encja o podanym ID nie istnieje
	ErrNotFound = errors.New("nie znaleziono")
	// ErrNoCopies oznacza próbę wypożyczenia książki bez dostępnych egzemplarzy
	ErrNoCopies = errors.New("brak dostępnych egzemplarzy")
	// ErrInconsistent oznacza niespójność między książkami a wypożyczeniami
	ErrInconsistent = errors.New("niespójny stan danych")
)

// Client przechowuje wszystkie dane systemu w pamięci procesu.
// Restart procesu czyści stan - system nie utrwala danych.
//
// Jeden mutex chroni wszystkie trzy kolekcje, dzięki czemu sekwencje
// odczyt-modyfikacja-zapis (wypożyczenie, zwrot, aktualizacja) wykonują
// się atomowo względem siebie.
type Client struct {
	mu      sync.Mutex
	books   map[int64]models.Book
	members map[int64]models.Member
	records map[int64]models.BorrowingRecord
}

// NewClient tworzy pusty magazyn danych
func NewClient() *Client {
	return &Client{
		books:   make(map[int64]models.Book),
		members: make(map[int64]models.Member),
		records: make(map[int64]models.BorrowingRecord),
	}
}
