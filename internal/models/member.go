package models

// Member reprezentuje czytelnika zapisanego do biblioteki
type Member struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
