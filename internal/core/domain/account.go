package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is the aggregate root owning a user's cards. Identity for lookups
// is the login; the UUID only tags the record in persisted snapshots.
// Cards keep insertion order, which is creation order.
type Account struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Age       int       `json:"age" yaml:"age"`
	Login     string    `json:"login" yaml:"login"`
	Password  string    `json:"-" yaml:"password"`
	Cards     []*Card   `json:"cards" yaml:"cards"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

func NewAccount(name string, age int, login, password string) *Account {
	return &Account{
		ID:        uuid.New(),
		Name:      name,
		Age:       age,
		Login:     login,
		Password:  password,
		CreatedAt: time.Now(),
	}
}

// AddCard appends the card to the owned collection.
func (a *Account) AddCard(c *Card) {
	a.Cards = append(a.Cards, c)
}

// RemoveCard drops the card with the given number from the owned collection.
// Removing an absent number is a no-op.
func (a *Account) RemoveCard(number string) {
	for i, c := range a.Cards {
		if c.Number == number {
			a.Cards = append(a.Cards[:i], a.Cards[i+1:]...)
			return
		}
	}
}

// FindCard returns the owned card with the exact number, or nil.
func (a *Account) FindCard(number string) *Card {
	for _, c := range a.Cards {
		if c.Number == number {
			return c
		}
	}
	return nil
}
