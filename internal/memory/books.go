package memory

import (
	"fmt"
	"sort"
	"strings"

	"library-records/internal/models"
)

// GetBook pobiera książkę po ID
func (c *Client) GetBook(id int64) (*models.Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	book, ok := c.books[id]
	if !ok {
		return nil, fmt.Errorf("książka %d: %w", id, ErrNotFound)
	}
	return &book, nil
}

// CreateBook zapisuje książkę pod jej ID. Istniejąca książka o tym samym
// ID jest po cichu nadpisywana.
func (c *Client) CreateBook(book *models.Book) error {
	if book == nil {
		return fmt.Errorf("książka nie może być nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.books[book.ID] = *book
	return nil
}

// UpdateBook zastępuje książkę o podanym ID danymi z żądania. ID z żądania
// jest ignorowane. Zwraca ErrNotFound gdy książka nie istnieje - nieudana
// aktualizacja nie tworzy nowej encji.
func (c *Client) UpdateBook(id int64, book *models.Book) error {
	if book == nil {
		return fmt.Errorf("książka nie może być nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.books[id]; !ok {
		return fmt.Errorf("książka %d: %w", id, ErrNotFound)
	}

	book.ID = id
	c.books[id] = *book
	return nil
}

// DeleteBook usuwa książkę. Zwraca ErrNotFound gdy książka nie istnieje.
func (c *Client) DeleteBook(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.books[id]; !ok {
		return fmt.Errorf("książka %d: %w", id, ErrNotFound)
	}

	delete(c.books, id)
	return nil
}

// ListBooks zwraca wszystkie książki posortowane po ID
func (c *Client) ListBooks() []models.Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.listBooksLocked()
}

func (c *Client) listBooksLocked() []models.Book {
	books := make([]models.Book, 0, len(c.books))
	for _, book := range c.books {
		books = append(books, book)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books
}

// ListBooksByAuthorAndGenre filtruje książki po autorze (dokładne dopasowanie
// bez rozróżniania wielkości liter) oraz opcjonalnie po gatunku (dopasowanie
// fragmentu, również bez rozróżniania wielkości liter).
func (c *Client) ListBooksByAuthorAndGenre(author, genre string) []models.Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	genreLower := strings.ToLower(genre)

	results := []models.Book{}
	for _, book := range c.listBooksLocked() {
		if !strings.EqualFold(book.Author, author) {
			continue
		}
		if genre != "" && !strings.Contains(strings.ToLower(book.Genre), genreLower) {
			continue
		}
		results = append(results, book)
	}
	return results
}

// ListBooksDueOn zwraca książki z przynajmniej jednym wypożyczeniem o podanym
// terminie zwrotu. Każda książka pojawia się najwyżej raz. Wypożyczenia
// wskazujące na usuniętą książkę są po cichu pomijane.
func (c *Client) ListBooksDueOn(date models.Date) []models.Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[int64]bool)
	results := []models.Book{}
	for _, record := range c.listRecordsLocked() {
		if !record.DueDate.Equal(date) {
			continue
		}
		book, ok := c.books[record.BookID]
		if !ok || seen[book.ID] {
			continue
		}
		seen[book.ID] = true
		results = append(results, book)
	}
	return results
}

// CheckAvailability zwraca datę od której książka będzie dostępna: dzisiejszą
// gdy jest wolny egzemplarz, w przeciwnym razie najwcześniejszy termin zwrotu
// wśród wypożyczeń tej książki. Gdy egzemplarze są wyczerpane a żadne
// wypożyczenie nie wskazuje na książkę, zwraca ErrInconsistent.
func (c *Client) CheckAvailability(id int64) (models.Date, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	book, ok := c.books[id]
	if !ok {
		return models.Date{}, fmt.Errorf("książka %d: %w", id, ErrNotFound)
	}

	if book.IsAvailable() {
		return models.Today(), nil
	}

	var earliest models.Date
	found := false
	for _, record := range c.records {
		if record.BookID != id {
			continue
		}
		if !found || record.DueDate.Before(earliest) {
			earliest = record.DueDate
			found = true
		}
	}

	if !found {
		return models.Date{}, fmt.Errorf("brak wypożyczeń dla wyczerpanej książki %d: %w", id, ErrInconsistent)
	}
	return earliest, nil
}
