// Package storage persists the account collection as one snapshot document.
// Two backends implement the same contract: a YAML file (default) and a
// Postgres table. Both overwrite the whole collection on every save; the
// core never partially updates the store.
package storage

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bogdan892/refactoring/internal/core/domain"
)

const snapshotVersion = 1

// snapshot is the serialized form of the whole account collection.
type snapshot struct {
	Version  int             `yaml:"version" json:"version"`
	SavedAt  time.Time       `yaml:"saved_at" json:"saved_at"`
	Accounts []accountRecord `yaml:"accounts" json:"accounts"`
}

// accountRecord mirrors domain.Account without behavior, so the document
// layout stays stable even when the domain type grows.
type accountRecord struct {
	ID        string       `yaml:"id" json:"id"`
	Name      string       `yaml:"name" json:"name"`
	Age       int          `yaml:"age" json:"age"`
	Login     string       `yaml:"login" json:"login"`
	Password  string       `yaml:"password" json:"password"`
	CreatedAt time.Time    `yaml:"created_at" json:"created_at"`
	Cards     []cardRecord `yaml:"cards" json:"cards"`
}

type cardRecord struct {
	Type    string          `yaml:"type" json:"type"`
	Number  string          `yaml:"number" json:"number"`
	Balance decimal.Decimal `yaml:"balance" json:"balance"`
}

func toRecord(acc *domain.Account) accountRecord {
	rec := accountRecord{
		ID:        acc.ID.String(),
		Name:      acc.Name,
		Age:       acc.Age,
		Login:     acc.Login,
		Password:  acc.Password,
		CreatedAt: acc.CreatedAt,
	}
	for _, c := range acc.Cards {
		rec.Cards = append(rec.Cards, cardRecord{
			Type:    string(c.Type),
			Number:  c.Number,
			Balance: c.Balance,
		})
	}
	return rec
}

func fromRecord(rec accountRecord) *domain.Account {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		id = uuid.New()
	}
	acc := &domain.Account{
		ID:        id,
		Name:      rec.Name,
		Age:       rec.Age,
		Login:     rec.Login,
		Password:  rec.Password,
		CreatedAt: rec.CreatedAt,
	}
	for _, c := range rec.Cards {
		acc.Cards = append(acc.Cards, &domain.Card{
			Type:    domain.CardType(c.Type),
			Number:  c.Number,
			Balance: c.Balance,
		})
	}
	return acc
}
