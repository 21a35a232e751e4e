//go:build unit

package repository

import (
	"context"
	"reflect"
	"testing"

	"cozycup/internal/domain/pool"
	"cozycup/internal/domain/reservation"
	"cozycup/internal/infra"
	"cozycup/internal/infra/repository/converter"
	"cozycup/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

// fakeRow copies values into Scan destinations of the same type.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return assert.AnError
	}
	for i, v := range r.values {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

func rowsAffected(n int) pgconn.CommandTag {
	if n == 0 {
		return pgconn.NewCommandTag("UPDATE 0")
	}
	return pgconn.NewCommandTag("UPDATE 1")
}

func TestPoolRepository_TryReserve(t *testing.T) {
	reserved := builder.NewPoolBuilder().WithCapacity(5, 3).Build()

	tests := []struct {
		name      string
		row       fakeRow
		wantPool  bool
		wantError bool
	}{
		{
			name:     "OK: returns the incremented pool",
			row:      fakeRow{values: converter.PoolArgs(reserved)},
			wantPool: true,
		},
		{
			name: "OK: no matching row yields nil",
			row:  fakeRow{err: pgx.ErrNoRows},
		},
		{
			name:      "NG: database failure",
			row:       fakeRow{err: assert.AnError},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("QueryRow", mock.Anything, tryReservePool, mock.Anything).Return(tt.row)

			got, err := NewPoolRepository().TryReserve(context.Background(), db, pool.KindPickupWindow, reserved.ID(), builder.BaseTime)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			if !tt.wantPool {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, reserved.ID(), got.ID())
			assert.Equal(t, 3, got.BookedCount())
			assert.Equal(t, 2, got.Remaining())
			db.AssertExpectations(t)
		})
	}
}

func TestPoolRepository_Release(t *testing.T) {
	tests := []struct {
		name      string
		tag       pgconn.CommandTag
		execErr   error
		want      bool
		wantError bool
	}{
		{name: "OK: one unit given back", tag: rowsAffected(1), want: true},
		{name: "OK: counter already zero", tag: rowsAffected(0), want: false},
		{name: "NG: database failure", tag: rowsAffected(0), execErr: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, releasePool, mock.Anything).Return(tt.tag, tt.execErr)

			got, err := NewPoolRepository().Release(context.Background(), db, pool.KindSlot, uuid.New())

			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPoolRepository_FindByID_NotFound(t *testing.T) {
	db := new(MockDBTX)
	db.On("QueryRow", mock.Anything, selectPool, mock.Anything).Return(fakeRow{err: pgx.ErrNoRows})

	_, err := NewPoolRepository().FindByID(context.Background(), db, pool.KindSlot, uuid.New())

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestPoolRepository_Update_MissingRow(t *testing.T) {
	db := new(MockDBTX)
	db.On("Exec", mock.Anything, updatePool, mock.Anything).Return(rowsAffected(0), nil)

	err := NewPoolRepository().Update(context.Background(), db, builder.NewPoolBuilder().Build())

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestReservationRepository_FindByID(t *testing.T) {
	order := builder.NewOrderBuilder().Build()
	args, err := converter.ReservationArgs(order)
	require.NoError(t, err)

	t.Run("OK: row maps back to the same reservation", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, selectReservation, mock.Anything).Return(fakeRow{values: args})

		got, err := NewReservationRepository().FindByID(context.Background(), db, reservation.KindOrder, order.ID())

		require.NoError(t, err)
		assert.Equal(t, order.Snapshot(), got.Snapshot())
	})

	t.Run("NG: missing row", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, selectReservation, mock.Anything).Return(fakeRow{err: pgx.ErrNoRows})

		_, err := NewReservationRepository().FindByID(context.Background(), db, reservation.KindBooking, uuid.New())

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	booking := builder.NewBookingBuilder().Build()
	require.NoError(t, booking.MarkStatus(reservation.StatusCancelled, reservation.ActorCustomer, builder.BaseTime))

	tests := []struct {
		name string
		tag  pgconn.CommandTag
		want bool
	}{
		{name: "OK: status still matched", tag: rowsAffected(1), want: true},
		{name: "NG: status moved underneath", tag: rowsAffected(0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, updateReservationStatus, mock.MatchedBy(func(args []any) bool {
				return args[0] == booking.ID() && args[1] == reservation.StatusBooked.String() && args[2] == reservation.StatusCancelled.String()
			})).Return(tt.tag, nil)

			got, err := NewReservationRepository().UpdateStatus(context.Background(), db, booking, reservation.StatusBooked)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			db.AssertExpectations(t)
		})
	}
}

func TestUserRepository_Create(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name     string
		execErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "OK", execErr: nil},
		{name: "NG: email taken", execErr: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "NG: database failure", execErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, insertUser, mock.Anything).Return(rowsAffected(1), tt.execErr)

			err := NewUserRepository().Create(context.Background(), db, u)

			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tt.wantKind))
		})
	}
}

func TestUserRepository_SetRefreshTokenHash(t *testing.T) {
	hash := "abc123"

	t.Run("OK: stores the hash", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, updateUserRefreshTokenHash, mock.Anything).Return(rowsAffected(1), nil)

		assert.NoError(t, NewUserRepository().SetRefreshTokenHash(context.Background(), db, uuid.New(), &hash))
	})

	t.Run("NG: unknown user", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, updateUserRefreshTokenHash, mock.Anything).Return(rowsAffected(0), nil)

		err := NewUserRepository().SetRefreshTokenHash(context.Background(), db, uuid.New(), nil)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestPackageRepository_FindActiveByID(t *testing.T) {
	pkg := builder.NewPackageBuilder().Build()

	t.Run("OK", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, selectActivePackage, mock.Anything).Return(fakeRow{values: []any{
			pkg.ID(), pkg.Name(), pkg.Credits(), pkg.PriceCents(), pkg.IsActive(), pkg.CreatedAt(), pkg.UpdatedAt(),
		}})

		got, err := NewPackageRepository().FindActiveByID(context.Background(), db, pkg.ID())

		require.NoError(t, err)
		assert.Equal(t, pkg, got)
	})

	t.Run("NG: inactive or missing", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, selectActivePackage, mock.Anything).Return(fakeRow{err: pgx.ErrNoRows})

		_, err := NewPackageRepository().FindActiveByID(context.Background(), db, uuid.New())

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
