package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&Booking{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := EnsureReservationIndex(db); err != nil {
		t.Fatalf("reservation index failed: %v", err)
	}
	return db
}

func TestGormRepository_SecondActiveReservationRejected(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	first := &Booking{ClientID: 1, PropertyID: 42, AgentID: 2, Kind: KindReservation, Status: StatusPending}
	assert.NoError(t, repo.Create(ctx, first))

	second := &Booking{ClientID: 3, PropertyID: 42, AgentID: 2, Kind: KindReservation, Status: StatusPending}
	assert.ErrorIs(t, repo.Create(ctx, second), ErrPropertyHeld)
}

func TestGormRepository_CancelledReservationFreesUnit(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	first := &Booking{ClientID: 1, PropertyID: 42, AgentID: 2, Kind: KindReservation, Status: StatusConfirmed}
	assert.NoError(t, repo.Create(ctx, first))
	assert.NoError(t, repo.CancelWithReason(ctx, first.ID, "client backed out"))

	second := &Booking{ClientID: 3, PropertyID: 42, AgentID: 2, Kind: KindReservation, Status: StatusPending}
	assert.NoError(t, repo.Create(ctx, second))
}

func TestGormRepository_ViewingsNotLimitedByIndex(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	held := &Booking{ClientID: 1, PropertyID: 42, AgentID: 2, Kind: KindReservation, Status: StatusConfirmed}
	assert.NoError(t, repo.Create(ctx, held))

	// viewings on the same unit stay unrestricted
	for clientID := int64(3); clientID <= 5; clientID++ {
		v := &Booking{ClientID: clientID, PropertyID: 42, AgentID: 2, Kind: KindViewing, Status: StatusPending}
		assert.NoError(t, repo.Create(ctx, v))
	}
}
