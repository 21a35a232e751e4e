//go:build unit

package commands_test

import (
	"testing"
	"time"

	"cozycup/internal/domain/policy"
	"cozycup/internal/domain/reservation"
	"cozycup/internal/domain/user"
	"cozycup/internal/pkg/clock"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/pkg/qrtoken"
	"cozycup/internal/usecase/capacity"
	"cozycup/internal/usecase/commands"
	"cozycup/tests/common/builder"
	"cozycup/tests/common/memstore"
	"cozycup/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store     *memstore.Store
	publisher *memstore.Publisher
	clock     *clock.MockClock
	qr        *qrtoken.Service
	orders    commands.OrderCommands
	bookings  commands.BookingCommands
	checkIn   commands.CheckInCommands
	wallet    commands.WalletCommands
	pools     commands.PoolCommands
	menu      commands.MenuCommands
}

var cancelWindows = policy.CancelWindows{Order: 30 * time.Minute, Booking: 30 * time.Minute}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	pub := &memstore.Publisher{}
	clk := clock.NewMockClock(builder.BaseTime)
	logger := testutil.DiscardLogger()
	qr := testutil.NewQRService(t, clk)
	capSvc := capacity.NewService(store, clk, logger)

	return &fixture{
		store:     store,
		publisher: pub,
		clock:     clk,
		qr:        qr,
		orders:    commands.NewOrderCommands(store, capSvc, reservation.NewDefaultPriceCalculator(), cancelWindows, pub, clk, logger),
		bookings:  commands.NewBookingCommands(store, capSvc, cancelWindows, qr, pub, clk, logger),
		checkIn:   commands.NewCheckInCommands(store, qr, policy.CheckInWindow{Early: 10 * time.Minute, LateGrace: 30 * time.Minute}, pub, clk, logger),
		wallet:    commands.NewWalletCommands(store, store.Wallet(), qr, pub, 5, clk, logger),
		pools:     commands.NewPoolCommands(store, pub, clk, logger),
		menu:      commands.NewMenuCommands(store, pub, clk, logger),
	}
}

func customer(id uuid.UUID) commands.Principal {
	return commands.Principal{UserID: id, Role: user.RoleCustomer}
}

func host() commands.Principal {
	return commands.Principal{UserID: uuid.New(), Role: user.RoleHost}
}

func requireAppErr(t *testing.T, err error, kind errs.Kind, msg string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := errs.AsApp(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, kind, appErr.Kind)
	if msg != "" {
		assert.Equal(t, msg, appErr.Message)
	}
}
