package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/keracoffee/kera/internal/orders/domain"
)

// receiptModel is the receipts table row. Timestamps are Unix seconds.
type receiptModel struct {
	ID       int64
	GUID     string
	Client   string
	DrinkID  int
	Drink    string
	Sugar    bool
	Blow     bool
	ServedAt int64
}

func toReceiptModel(r *domain.Receipt) receiptModel {
	return receiptModel{
		ID:       r.ID(),
		GUID:     r.GUID(),
		Client:   r.Client(),
		DrinkID:  r.DrinkID(),
		Drink:    r.Drink(),
		Sugar:    r.Sugar(),
		Blow:     r.Blow(),
		ServedAt: r.ServedAt().Unix(),
	}
}

func (m receiptModel) toDomain() *domain.Receipt {
	return domain.ReconstituteReceipt(m.ID, m.GUID, m.Client, m.DrinkID, m.Drink, m.Sugar, m.Blow,
		time.Unix(m.ServedAt, 0).UTC())
}

const receiptColumns = `id, guid, client, drink_id, drink, sugar, blow, served_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReceipt(row rowScanner) (receiptModel, error) {
	var m receiptModel
	err := row.Scan(&m.ID, &m.GUID, &m.Client, &m.DrinkID, &m.Drink, &m.Sugar, &m.Blow, &m.ServedAt)
	return m, err
}

// receiptRepository implements domain.Repository using SQLite.
type receiptRepository struct {
	db *sql.DB
}

func newReceiptRepository(db *sql.DB) *receiptRepository {
	return &receiptRepository{db: db}
}

var _ domain.Repository = (*receiptRepository)(nil)

// Save inserts a new receipt and sets its ID.
func (r *receiptRepository) Save(receipt *domain.Receipt) error {
	m := toReceiptModel(receipt)
	result, err := r.db.Exec(
		`INSERT INTO receipts (guid, client, drink_id, drink, sugar, blow, served_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.GUID, m.Client, m.DrinkID, m.Drink, m.Sugar, m.Blow, m.ServedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	receipt.SetID(id)
	return nil
}

// FindByGUID returns ReceiptNotFoundError when no receipt matches.
func (r *receiptRepository) FindByGUID(guid string) (*domain.Receipt, error) {
	m, err := scanReceipt(r.db.QueryRow(
		`SELECT `+receiptColumns+` FROM receipts WHERE guid = ?`, guid,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ReceiptNotFoundError{GUID: guid}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find receipt by guid: %w", err)
	}
	return m.toDomain(), nil
}

// Recent returns up to limit receipts, newest first. Receipts served in the same
// second are ordered by insertion.
func (r *receiptRepository) Recent(limit int) ([]*domain.Receipt, error) {
	if limit < 1 {
		return nil, domain.ErrInvalidLimit
	}

	rows, err := r.db.Query(
		`SELECT `+receiptColumns+` FROM receipts ORDER BY served_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var receipts []*domain.Receipt
	for rows.Next() {
		m, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		receipts = append(receipts, m.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	return receipts, nil
}

// Count returns the number of stored receipts.
func (r *receiptRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM receipts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count receipts: %w", err)
	}
	return n, nil
}
