//go:build integration

package main_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shareit-platform/service-sharing/internal/application"
	"github.com/shareit-platform/service-sharing/internal/repository"
)

// testInfra holds shared test infrastructure.
type testInfra struct {
	DB      *gorm.DB
	Cleanup func()
}

// sharingStack holds the wired-up application services under test.
type sharingStack struct {
	Users    *application.UserService
	Items    *application.ItemService
	Requests *application.RequestService
	Bookings *application.BookingService
}

// setupPostgres starts a PostgreSQL testcontainer and returns a connected,
// migrated GORM DB.
func setupPostgres(t *testing.T) *testInfra {
	t.Helper()
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test_sharing",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: pgReq,
		Started:          true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=test_sharing sslmode=disable", pgHost, pgPort.Port())

	// Poll until GORM can actually connect and ping.
	var db *gorm.DB
	require.Eventually(t, func() bool {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			return false
		}
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, 30*time.Second, 1*time.Second, "PostgreSQL not ready for connections")

	require.NoError(t, db.AutoMigrate(
		&repository.UserModel{},
		&repository.RequestModel{},
		&repository.ItemModel{},
		&repository.BookingModel{},
		&repository.CommentModel{},
	))

	return &testInfra{
		DB: db,
		Cleanup: func() {
			_ = pgContainer.Terminate(context.Background())
		},
	}
}

// setupSharingStack wires the full service stack over the test database with
// event publishing disabled.
func setupSharingStack(db *gorm.DB) *sharingStack {
	log := zap.NewNop()

	userRepo := repository.NewGormUserRepository(db)
	itemRepo := repository.NewGormItemRepository(db)
	commentRepo := repository.NewGormCommentRepository(db)
	requestRepo := repository.NewGormRequestRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)

	return &sharingStack{
		Users:    application.NewUserService(userRepo, log),
		Items:    application.NewItemService(itemRepo, commentRepo, userRepo, requestRepo, bookingRepo, log),
		Requests: application.NewRequestService(requestRepo, itemRepo, userRepo, log),
		Bookings: application.NewBookingService(bookingRepo, userRepo, itemRepo, application.NopPublisher(), log),
	}
}

// seedBooking inserts an APPROVED booking with the given window offsets from
// now, bypassing the time-window validation that guards service-side creation.
func seedBooking(t *testing.T, db *gorm.DB, itemID, bookerID int64, startOffset, endOffset time.Duration) int64 {
	t.Helper()
	model := repository.BookingModel{
		Start:    time.Now().Add(startOffset),
		End:      time.Now().Add(endOffset),
		ItemID:   itemID,
		BookerID: bookerID,
		Status:   "APPROVED",
	}
	require.NoError(t, db.Create(&model).Error)
	return model.ID
}

// seedFinishedBooking inserts a booking that already ended.
func seedFinishedBooking(t *testing.T, db *gorm.DB, itemID, bookerID int64) int64 {
	return seedBooking(t, db, itemID, bookerID, -48*time.Hour, -24*time.Hour)
}
