package models

// Book reprezentuje książkę w katalogu biblioteki
type Book struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Genre           string `json:"genre"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
}

// IsAvailable sprawdza czy książka jest dostępna do wypożyczenia
func (b *Book) IsAvailable() bool {
	return b.AvailableCopies > 0
}

// DecrementAvailableCopies zmniejsza liczbę dostępnych egzemplarzy.
// Zwraca false gdy żaden egzemplarz nie jest dostępny.
func (b *Book) DecrementAvailableCopies() bool {
	if b.AvailableCopies <= 0 {
		return false
	}
	b.AvailableCopies--
	return true
}

// IncrementAvailableCopies zwiększa liczbę dostępnych egzemplarzy.
// Zwraca false gdy wszystkie egzemplarze są już na stanie.
func (b *Book) IncrementAvailableCopies() bool {
	if b.AvailableCopies >= b.TotalCopies {
		return false
	}
	b.AvailableCopies++
	return true
}
