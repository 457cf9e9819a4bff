package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"library-records/internal/models"
)

func main() {
	// Wczytaj zmienne środowiskowe z pliku .env
	if err := godotenv.Load(); err != nil {
		log.Println("Brak pliku .env - używam zmiennych systemowych")
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	log.Println("Dodawanie przykładowych danych do systemu...")

	books := []models.Book{
		{
			ID:              1,
			Title:           "Wiedźmin: Ostatnie życzenie",
			Author:          "Andrzej Sapkowski",
			Genre:           "Fantasy",
			TotalCopies:     3,
			AvailableCopies: 3,
		},
		{
			ID:              2,
			Title:           "Rok 1984",
			Author:          "George Orwell",
			Genre:           "Dystopia",
			TotalCopies:     2,
			AvailableCopies: 2,
		},
		{
			ID:              3,
			Title:           "Folwark zwierzęcy",
			Author:          "George Orwell",
			Genre:           "Satyra polityczna",
			TotalCopies:     2,
			AvailableCopies: 2,
		},
		{
			ID:              4,
			Title:           "Zbrodnia i kara",
			Author:          "Fiodor Dostojewski",
			Genre:           "Klasyka",
			TotalCopies:     2,
			AvailableCopies: 2,
		},
		{
			ID:              5,
			Title:           "Solaris",
			Author:          "Stanisław Lem",
			Genre:           "Science Fiction",
			TotalCopies:     4,
			AvailableCopies: 4,
		},
	}

	for _, book := range books {
		if err := post(apiURL+"/api/books", book); err != nil {
			log.Fatalf("Błąd dodawania książki %q: %v", book.Title, err)
		}
		log.Printf("Dodano książkę: %s - %s", book.Author, book.Title)
	}

	members := []models.Member{
		{ID: 1, Name: "Jan Kowalski", Email: "jan.kowalski@example.com", Phone: "+48 600 100 200"},
		{ID: 2, Name: "Anna Nowak", Email: "anna.nowak@example.com", Phone: "+48 600 300 400"},
		{ID: 3, Name: "Piotr Wiśniewski", Email: "piotr.wisniewski@example.com", Phone: "+48 600 500 600"},
	}

	for _, member := range members {
		if err := post(apiURL+"/api/members", member); err != nil {
			log.Fatalf("Błąd dodawania czytelnika %q: %v", member.Name, err)
		}
		log.Printf("Dodano czytelnika: %s", member.Name)
	}

	log.Println("Zakończono dodawanie przykładowych danych")
}

// post wysyła payload jako JSON i sprawdza kod odpowiedzi
func post(url string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("błąd serializacji: %w", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("błąd żądania: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("nieoczekiwany kod odpowiedzi: %d", resp.StatusCode)
	}
	return nil
}
