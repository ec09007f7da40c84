package orders

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordersadmin.com/app/internal/audit"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) ListAll(ctx context.Context) ([]Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *mockAPI) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	return m.Called(ctx, orderID, status).Error(0)
}

func (m *mockAPI) Delete(ctx context.Context, orderID string) error {
	return m.Called(ctx, orderID).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, e audit.Event) error {
	return m.Called(ctx, e).Error(0)
}

// serviceError mimics an order service error body carrying a message.
type serviceError struct{ msg string }

func (e serviceError) Error() string         { return "order service: " + e.msg }
func (e serviceError) PublicMessage() string { return e.msg }

func newTestConsole(api API, pub audit.Publisher) *Console {
	return NewConsole(api, pub, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestConsole_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		api := new(mockAPI)
		want := []Order{{ID: "1", OrderNumber: "ORD-1", TotalAmount: decimal.NewFromInt(10)}}
		api.On("ListAll", ctx).Return(want, nil)

		got, err := newTestConsole(api, nil).List(ctx)

		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, ViewPopulated, StateOf(got))
	})

	t.Run("Nil list is empty", func(t *testing.T) {
		api := new(mockAPI)
		api.On("ListAll", ctx).Return(nil, nil)

		got, err := newTestConsole(api, nil).List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, ViewEmpty, StateOf(got))
	})

	t.Run("Failure uses server message", func(t *testing.T) {
		api := new(mockAPI)
		api.On("ListAll", ctx).Return(nil, serviceError{msg: "Admin only"})

		got, err := newTestConsole(api, nil).List(ctx)

		require.Error(t, err)
		assert.Empty(t, got)
		var f *Failure
		require.ErrorAs(t, err, &f)
		assert.Equal(t, "Admin only", f.Msg)
	})

	t.Run("Failure falls back", func(t *testing.T) {
		api := new(mockAPI)
		api.On("ListAll", ctx).Return(nil, errors.New("connection refused"))

		_, err := newTestConsole(api, nil).List(ctx)

		var f *Failure
		require.ErrorAs(t, err, &f)
		assert.Equal(t, MsgLoadFailed, f.Msg)
	})
}

func TestConsole_ChangeStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		api := new(mockAPI)
		pub := new(mockPublisher)
		api.On("UpdateStatus", ctx, "abc", StatusShipped).Return(nil)
		pub.On("Publish", ctx, mock.MatchedBy(func(e audit.Event) bool {
			return e.Type == audit.TypeStatusChanged && e.OrderID == "abc" && e.Status == "shipped" && e.ActorUserID == "admin-1"
		})).Return(nil)

		msg, err := newTestConsole(api, pub).ChangeStatus(ctx, "admin-1", "abc", "shipped")

		require.NoError(t, err)
		assert.Equal(t, "Order status updated to shipped!", msg)
		api.AssertExpectations(t)
		pub.AssertExpectations(t)
	})

	t.Run("Invalid status makes no call", func(t *testing.T) {
		api := new(mockAPI)

		_, err := newTestConsole(api, nil).ChangeStatus(ctx, "admin-1", "abc", "lost")

		assert.ErrorIs(t, err, ErrInvalidStatus)
		var f *Failure
		require.ErrorAs(t, err, &f)
		assert.Equal(t, MsgUpdateFailed, f.Msg)
		api.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing id", func(t *testing.T) {
		api := new(mockAPI)

		_, err := newTestConsole(api, nil).ChangeStatus(ctx, "admin-1", "  ", "shipped")

		assert.ErrorIs(t, err, ErrMissingOrderID)
		api.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Service failure", func(t *testing.T) {
		api := new(mockAPI)
		pub := new(mockPublisher)
		api.On("UpdateStatus", ctx, "abc", StatusCancelled).Return(serviceError{msg: "Order already delivered"})

		_, err := newTestConsole(api, pub).ChangeStatus(ctx, "admin-1", "abc", "cancelled")

		var f *Failure
		require.ErrorAs(t, err, &f)
		assert.Equal(t, "Order already delivered", f.Msg)
		pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Audit failure does not fail the update", func(t *testing.T) {
		api := new(mockAPI)
		pub := new(mockPublisher)
		api.On("UpdateStatus", ctx, "abc", StatusDelivered).Return(nil)
		pub.On("Publish", ctx, mock.Anything).Return(errors.New("broker down"))

		msg, err := newTestConsole(api, pub).ChangeStatus(ctx, "admin-1", "abc", "delivered")

		require.NoError(t, err)
		assert.Equal(t, "Order status updated to delivered!", msg)
	})
}

func TestConsole_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		api := new(mockAPI)
		pub := new(mockPublisher)
		api.On("Delete", ctx, "o-1001").Return(nil)
		pub.On("Publish", ctx, mock.MatchedBy(func(e audit.Event) bool {
			return e.Type == audit.TypeDeleted && e.OrderID == "o-1001"
		})).Return(nil)

		msg, err := newTestConsole(api, pub).Delete(ctx, "admin-1", "o-1001")

		require.NoError(t, err)
		assert.Equal(t, MsgDeleted, msg)
		pub.AssertExpectations(t)
	})

	t.Run("Failure shows server message verbatim", func(t *testing.T) {
		api := new(mockAPI)
		api.On("Delete", ctx, "o-1001").Return(serviceError{msg: "Cannot delete a shipped order"})

		_, err := newTestConsole(api, nil).Delete(ctx, "admin-1", "o-1001")

		var f *Failure
		require.ErrorAs(t, err, &f)
		assert.Equal(t, "Cannot delete a shipped order", f.Msg)
	})

	t.Run("Failure falls back", func(t *testing.T) {
		api := new(mockAPI)
		api.On("Delete", ctx, "o-1001").Return(serviceError{msg: "  "})

		_, err := newTestConsole(api, nil).Delete(ctx, "admin-1", "o-1001")

		var f *Failure
		require.ErrorAs(t, err, &f)
		assert.Equal(t, MsgDeleteFailed, f.Msg)
	})
}

func TestDeletePrompt(t *testing.T) {
	assert.Equal(t, "Are you sure you want to delete order ORD-1001?", DeletePrompt("ORD-1001"))
}
