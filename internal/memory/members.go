package memory

import (
	"fmt"
	"sort"

	"library-records/internal/models"
)

// GetMember pobiera czytelnika po ID
func (c *Client) GetMember(id int64) (*models.Member, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	member, ok := c.members[id]
	if !ok {
		return nil, fmt.Errorf("czytelnik %d: %w", id, ErrNotFound)
	}
	return &member, nil
}

// CreateMember zapisuje czytelnika pod jego ID. Istniejący czytelnik o tym
// samym ID jest po cichu nadpisywany.
func (c *Client) CreateMember(member *models.Member) error {
	if member == nil {
		return fmt.Errorf("czytelnik nie może być nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.members[member.ID] = *member
	return nil
}

// UpdateMember zastępuje czytelnika o podanym ID danymi z żądania. ID z
// żądania jest ignorowane. Zwraca ErrNotFound gdy czytelnik nie istnieje.
func (c *Client) UpdateMember(id int64, member *models.Member) error {
	if member == nil {
		return fmt.Errorf("czytelnik nie może być nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.members[id]; !ok {
		return fmt.Errorf("czytelnik %d: %w", id, ErrNotFound)
	}

	member.ID = id
	c.members[id] = *member
	return nil
}

// DeleteMember usuwa czytelnika. Zwraca ErrNotFound gdy czytelnik nie
// istnieje. Usunięcie czytelnika z aktywnymi wypożyczeniami nie jest
// blokowane.
func (c *Client) DeleteMember(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.members[id]; !ok {
		return fmt.Errorf("czytelnik %d: %w", id, ErrNotFound)
	}

	delete(c.members, id)
	return nil
}

// ListMembers zwraca wszystkich czytelników posortowanych po ID
func (c *Client) ListMembers() []models.Member {
	c.mu.Lock()
	defer c.mu.Unlock()

	members := make([]models.Member, 0, len(c.members))
	for _, member := range c.members {
		members = append(members, member)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members
}
