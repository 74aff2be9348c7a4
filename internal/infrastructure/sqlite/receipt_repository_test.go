package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keracoffee/kera/internal/orders/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestReceiptRepository_SaveAndFind(t *testing.T) {
	repo := newTestDB(t).Receipts()
	served := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)

	receipt := domain.NewReceipt("Gabi", 2, "Capuccino", true, true, served)
	require.NoError(t, repo.Save(receipt))
	require.NotZero(t, receipt.ID(), "Save should assign an ID")

	found, err := repo.FindByGUID(receipt.GUID())
	require.NoError(t, err)
	assert.Equal(t, receipt.ID(), found.ID())
	assert.Equal(t, "Gabi", found.Client())
	assert.Equal(t, 2, found.DrinkID())
	assert.Equal(t, "Capuccino", found.Drink())
	assert.True(t, found.Sugar())
	assert.True(t, found.Blow())
	assert.True(t, served.Equal(found.ServedAt()))
}

func TestReceiptRepository_FindMissing(t *testing.T) {
	repo := newTestDB(t).Receipts()

	_, err := repo.FindByGUID("nope")

	var notFound *domain.ReceiptNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.GUID)
}

func TestReceiptRepository_RecentNewestFirst(t *testing.T) {
	repo := newTestDB(t).Receipts()
	base := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)

	drinks := []string{"Tea", "Capuccino", "Espresso", "Latte"}
	for i, drink := range drinks {
		require.NoError(t, repo.Save(domain.NewReceipt("client", i+1, drink, false, false, base.Add(time.Duration(i)*time.Minute))))
	}

	recent, err := repo.Recent(3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "Latte", recent[0].Drink())
	assert.Equal(t, "Espresso", recent[1].Drink())
	assert.Equal(t, "Capuccino", recent[2].Drink())

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestReceiptRepository_SameSecondUsesInsertOrder(t *testing.T) {
	repo := newTestDB(t).Receipts()
	now := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(domain.NewReceipt("first", 1, "Tea", false, false, now)))
	require.NoError(t, repo.Save(domain.NewReceipt("second", 1, "Tea", false, false, now)))

	recent, err := repo.Recent(10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "second", recent[0].Client())
}

func TestReceiptRepository_RecentEmpty(t *testing.T) {
	recent, err := newTestDB(t).Receipts().Recent(5)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestReceiptRepository_RecentInvalidLimit(t *testing.T) {
	_, err := newTestDB(t).Receipts().Recent(0)
	require.ErrorIs(t, err, domain.ErrInvalidLimit)
}

func TestNewDB_FileBacked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "kera.db")

	db, err := NewDB(path)
	require.NoError(t, err)
	require.NoError(t, db.Receipts().Save(domain.NewReceipt("c", 3, "Espresso", false, false, time.Now())))
	require.NoError(t, db.Close())

	reopened, err := NewDB(path)
	require.NoError(t, err)
	defer reopened.Close()

	count, err := reopened.Receipts().Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count, "receipts survive reopening")
}
