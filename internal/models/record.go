package models

// BorrowingRecord reprezentuje wypożyczenie książki przez czytelnika.
// BookID i MemberID to zwykłe referencje - rekord nie jest właścicielem
// książki ani czytelnika.
type BorrowingRecord struct {
	ID         int64 `json:"id"`
	BookID     int64 `json:"book_id"`
	MemberID   int64 `json:"member_id"`
	BorrowDate Date  `json:"borrow_date"`
	DueDate    Date  `json:"due_date"`
	ReturnDate *Date `json:"return_date,omitempty"`
}

// IsOpen sprawdza czy wypożyczenie jest nadal aktywne (brak daty zwrotu)
func (r *BorrowingRecord) IsOpen() bool {
	return r.ReturnDate == nil
}
