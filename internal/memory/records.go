package memory

import (
	"fmt"
	"sort"

	"library-records/internal/models"
)

// LoanPeriodDays to stały okres wypożyczenia w dniach
const LoanPeriodDays = 14

// GetRecord pobiera wypożyczenie po ID
func (c *Client) GetRecord(id int64) (*models.BorrowingRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.records[id]
	if !ok {
		return nil, fmt.Errorf("wypożyczenie %d: %w", id, ErrNotFound)
	}
	return &record, nil
}

// CreateRecord zapisuje wypożyczenie pod jego ID bez logiki wypożyczania.
// Istniejący rekord o tym samym ID jest po cichu nadpisywany.
func (c *Client) CreateRecord(record *models.BorrowingRecord) error {
	if record == nil {
		return fmt.Errorf("wypożyczenie nie może być nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.records[record.ID] = *record
	return nil
}

// ListRecords zwraca wszystkie wypożyczenia posortowane po ID
func (c *Client) ListRecords() []models.BorrowingRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.listRecordsLocked()
}

func (c *Client) listRecordsLocked() []models.BorrowingRecord {
	records := make([]models.BorrowingRecord, 0, len(c.records))
	for _, record := range c.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

// BorrowBook rejestruje wypożyczenie: nadpisuje daty podane przez klienta
// datami serwera (wypożyczenie dzisiaj, termin zwrotu za 14 dni), zapisuje
// rekord i zmniejsza liczbę dostępnych egzemplarzy. Całość wykonuje się pod
// jednym zamknięciem, więc dwa równoległe wypożyczenia nie zabiorą tego
// samego egzemplarza.
//
// Książka jest sprawdzana przed zapisem rekordu - nieudane wypożyczenie
// nie zostawia osieroconego rekordu.
func (c *Client) BorrowBook(record *models.BorrowingRecord) error {
	if record == nil {
		return fmt.Errorf("wypożyczenie nie może być nil")
	}
	if record.BookID == 0 || record.MemberID == 0 {
		return fmt.Errorf("ID książki i czytelnika są wymagane")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	book, ok := c.books[record.BookID]
	if !ok {
		return fmt.Errorf("książka %d: %w", record.BookID, ErrNotFound)
	}
	if !book.DecrementAvailableCopies() {
		return fmt.Errorf("książka %d: %w", record.BookID, ErrNoCopies)
	}

	record.BorrowDate = models.Today()
	record.DueDate = record.BorrowDate.AddDays(LoanPeriodDays)
	record.ReturnDate = nil

	c.records[record.ID] = *record
	c.books[book.ID] = book
	return nil
}

// ReturnBook odnotowuje zwrot: ustawia datę zwrotu na rekordzie i przywraca
// jeden egzemplarz książki. Zwrot rekordu już zwróconego oraz zwrot który
// przekroczyłby łączną liczbę egzemplarzy kończą się ErrInconsistent.
func (c *Client) ReturnBook(recordID int64, returnDate models.Date) (*models.BorrowingRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.records[recordID]
	if !ok {
		return nil, fmt.Errorf("wypożyczenie %d: %w", recordID, ErrNotFound)
	}
	if !record.IsOpen() {
		return nil, fmt.Errorf("wypożyczenie %d zostało już zwrócone: %w", recordID, ErrInconsistent)
	}

	book, ok := c.books[record.BookID]
	if !ok {
		return nil, fmt.Errorf("książka %d: %w", record.BookID, ErrNotFound)
	}
	if !book.IncrementAvailableCopies() {
		return nil, fmt.Errorf("książka %d ma już komplet egzemplarzy: %w", record.BookID, ErrInconsistent)
	}

	record.ReturnDate = &returnDate
	c.records[recordID] = record
	c.books[book.ID] = book
	return &record, nil
}
