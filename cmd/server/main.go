package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"library-records/internal/handlers"
	"library-records/internal/memory"
)

func main() {
	// Wczytaj zmienne środowiskowe z pliku .env
	if err := godotenv.Load(); err != nil {
		log.Println("Brak pliku .env - używam zmiennych systemowych")
	}

	// Pobierz port z zmiennych środowiskowych lub użyj domyślnego
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Magazyn danych żyje wyłącznie w pamięci procesu - restart czyści stan
	store := memory.NewClient()
	log.Println("Magazyn danych w pamięci zainicjalizowany")

	router := handlers.NewRouter(store)

	// Start serwera
	log.Printf("Serwer uruchomiony na porcie %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Nie można uruchomić serwera: %v", err)
	}
}
