// Package domain contains the order journal's entities and repository contract.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Receipt records one served order.
type Receipt struct {
	id       int64
	guid     string
	client   string
	drinkID  int
	drink    string
	sugar    bool
	blow     bool
	servedAt time.Time
}

// NewReceipt creates an unsaved receipt with a fresh GUID.
func NewReceipt(client string, drinkID int, drink string, sugar, blow bool, servedAt time.Time) *Receipt {
	return &Receipt{
		guid:     uuid.NewString(),
		client:   client,
		drinkID:  drinkID,
		drink:    drink,
		sugar:    sugar,
		blow:     blow,
		servedAt: servedAt.UTC().Truncate(time.Second),
	}
}

// ReconstituteReceipt rebuilds a receipt loaded from storage.
func ReconstituteReceipt(id int64, guid, client string, drinkID int, drink string, sugar, blow bool, servedAt time.Time) *Receipt {
	return &Receipt{
		id:       id,
		guid:     guid,
		client:   client,
		drinkID:  drinkID,
		drink:    drink,
		sugar:    sugar,
		blow:     blow,
		servedAt: servedAt,
	}
}

func (r *Receipt) ID() int64           { return r.id }
func (r *Receipt) GUID() string        { return r.guid }
func (r *Receipt) Client() string      { return r.client }
func (r *Receipt) DrinkID() int        { return r.drinkID }
func (r *Receipt) Drink() string       { return r.drink }
func (r *Receipt) Sugar() bool         { return r.sugar }
func (r *Receipt) Blow() bool          { return r.blow }
func (r *Receipt) ServedAt() time.Time { return r.servedAt }

// SetID is called by the repository once the receipt has been stored.
func (r *Receipt) SetID(id int64) {
	r.id = id
}

// Repository persists receipts.
type Repository interface {
	// Save stores a new receipt and assigns its ID.
	Save(receipt *Receipt) error

	// FindByGUID returns ReceiptNotFoundError when no receipt matches.
	FindByGUID(guid string) (*Receipt, error)

	// Recent returns up to limit receipts, newest first.
	Recent(limit int) ([]*Receipt, error)

	// Count returns the number of stored receipts.
	Count() (int, error)
}
