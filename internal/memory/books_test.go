package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-records/internal/memory"
	"library-records/internal/models"
)

func Test_Client_BookRoundTrip(t *testing.T) {
	store := memory.NewClient()

	book := models.Book{ID: 1, Title: "Rok 1984", Author: "Orwell", Genre: "Dystopia", TotalCopies: 2, AvailableCopies: 2}
	require.NoError(t, store.CreateBook(&book))

	fetched, err := store.GetBook(1)
	require.NoError(t, err)
	assert.Equal(t, book, *fetched)

	updated := models.Book{ID: 99, Title: "Rok 1984", Author: "George Orwell", Genre: "Dystopia", TotalCopies: 3, AvailableCopies: 3}
	require.NoError(t, store.UpdateBook(1, &updated))

	fetched, err = store.GetBook(1)
	require.NoError(t, err)
	// ID z payloadu jest wymuszane na ID z trasy
	assert.Equal(t, int64(1), fetched.ID)
	assert.Equal(t, "George Orwell", fetched.Author)
	assert.Equal(t, 3, fetched.TotalCopies)

	require.NoError(t, store.DeleteBook(1))

	_, err = store.GetBook(1)
	assert.ErrorIs(t, err, memory.ErrNotFound)
}

func Test_Client_CreateBookOverwritesDuplicateID(t *testing.T) {
	store := memory.NewClient()

	require.NoError(t, store.CreateBook(&models.Book{ID: 1, Title: "Pierwsza"}))
	require.NoError(t, store.CreateBook(&models.Book{ID: 1, Title: "Druga"}))

	fetched, err := store.GetBook(1)
	require.NoError(t, err)
	assert.Equal(t, "Druga", fetched.Title)
	assert.Len(t, store.ListBooks(), 1)
}

func Test_Client_UpdateMissingBookLeavesStoreUnmodified(t *testing.T) {
	store := memory.NewClient()

	err := store.UpdateBook(7, &models.Book{ID: 7, Title: "Widmo"})
	assert.ErrorIs(t, err, memory.ErrNotFound)
	assert.Empty(t, store.ListBooks())
}

func Test_Client_DeleteMissingBook(t *testing.T) {
	store := memory.NewClient()

	assert.ErrorIs(t, store.DeleteBook(7), memory.ErrNotFound)
}

func Test_Client_ListBooksByAuthorAndGenre(t *testing.T) {
	store := memory.NewClient()

	require.NoError(t, store.CreateBook(&models.Book{ID: 1, Title: "Rok 1984", Author: "Orwell", Genre: "Dystopia polityczna"}))
	require.NoError(t, store.CreateBook(&models.Book{ID: 2, Title: "Folwark zwierzęcy", Author: "ORWELL", Genre: "Satyra"}))
	require.NoError(t, store.CreateBook(&models.Book{ID: 3, Title: "Nowy wspaniały świat", Author: "Huxley", Genre: "Dystopia"}))

	tests := []struct {
		name    string
		author  string
		genre   string
		wantIDs []int64
	}{
		{
			name:    "author_match_is_case_insensitive_and_exact",
			author:  "orwell",
			wantIDs: []int64{1, 2},
		},
		{
			name:    "genre_is_case_insensitive_substring",
			author:  "Orwell",
			genre:   "dystopia",
			wantIDs: []int64{1},
		},
		{
			name:    "genre_narrows_to_empty",
			author:  "Orwell",
			genre:   "romans",
			wantIDs: []int64{},
		},
		{
			name:    "author_substring_does_not_match",
			author:  "Orw",
			wantIDs: []int64{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			books := store.ListBooksByAuthorAndGenre(tc.author, tc.genre)
			ids := make([]int64, 0, len(books))
			for _, book := range books {
				ids = append(ids, book.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func Test_Client_ListBooksDueOn(t *testing.T) {
	store := memory.NewClient()

	require.NoError(t, store.CreateBook(&models.Book{ID: 1, Title: "Rok 1984", TotalCopies: 2}))
	require.NoError(t, store.CreateBook(&models.Book{ID: 2, Title: "Solaris", TotalCopies: 1}))

	dueSoon := models.NewDate(2026, time.September, 10)
	dueLater := models.NewDate(2026, time.September, 20)

	require.NoError(t, store.CreateRecord(&models.BorrowingRecord{ID: 1, BookID: 1, MemberID: 1, DueDate: dueSoon}))
	require.NoError(t, store.CreateRecord(&models.BorrowingRecord{ID: 2, BookID: 1, MemberID: 2, DueDate: dueSoon}))
	require.NoError(t, store.CreateRecord(&models.BorrowingRecord{ID: 3, BookID: 2, MemberID: 1, DueDate: dueLater}))
	// Wypożyczenie wskazujące na usuniętą książkę jest pomijane
	require.NoError(t, store.CreateRecord(&models.BorrowingRecord{ID: 4, BookID: 99, MemberID: 1, DueDate: dueSoon}))

	books := store.ListBooksDueOn(dueSoon)
	require.Len(t, books, 1)
	assert.Equal(t, int64(1), books[0].ID)

	books = store.ListBooksDueOn(dueLater)
	require.Len(t, books, 1)
	assert.Equal(t, int64(2), books[0].ID)

	assert.Empty(t, store.ListBooksDueOn(models.NewDate(2026, time.October, 1)))
}

func Test_Client_CheckAvailability(t *testing.T) {
	store := memory.NewClient()

	require.NoError(t, store.CreateBook(&models.Book{ID: 1, Title: "Rok 1984", TotalCopies: 1, AvailableCopies: 1}))

	date, err := store.CheckAvailability(1)
	require.NoError(t, err)
	assert.True(t, date.Equal(models.Today()))

	_, err = store.CheckAvailability(42)
	assert.ErrorIs(t, err, memory.ErrNotFound)
}

func Test_Client_CheckAvailabilityReturnsEarliestDueDate(t *testing.T) {
	store := memory.NewClient()

	require.NoError(t, store.CreateBook(&models.Book{ID: 1, Title: "Solaris", TotalCopies: 2, AvailableCopies: 0}))

	earlier := models.NewDate(2026, time.September, 5)
	later := models.NewDate(2026, time.September, 12)
	require.NoError(t, store.CreateRecord(&models.BorrowingRecord{ID: 1, BookID: 1, MemberID: 1, DueDate: later}))
	require.NoError(t, store.CreateRecord(&models.BorrowingRecord{ID: 2, BookID: 1, MemberID: 2, DueDate: earlier}))

	date, err := store.CheckAvailability(1)
	require.NoError(t, err)
	assert.True(t, date.Equal(earlier))
}

func Test_Client_CheckAvailabilityWithoutSupportingRecords(t *testing.T) {
	store := memory.NewClient()

	// Egzemplarze wyczerpane, ale żadne wypożyczenie nie wskazuje na książkę
	require.NoError(t, store.CreateBook(&models.Book{ID: 1, Title: "Solaris", TotalCopies: 1, AvailableCopies: 0}))

	_, err := store.CheckAvailability(1)
	assert.ErrorIs(t, err, memory.ErrInconsistent)
}
