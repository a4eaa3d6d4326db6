package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"estatecrm/internal/domain/activity"
	"estatecrm/internal/domain/client"
	"estatecrm/internal/domain/property"
)

// Mock repositories

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, b *Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 301
	}
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, f ListFilter) ([]Booking, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRepository) CancelWithReason(ctx context.Context, id int64, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

func (m *MockRepository) UpdateDeposit(ctx context.Context, id int64, amount float64) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

func (m *MockRepository) HasActiveReservation(ctx context.Context, propertyID int64) (bool, error) {
	args := m.Called(ctx, propertyID)
	return args.Bool(0), args.Error(1)
}

type MockClientDirectory struct {
	mock.Mock
}

func (m *MockClientDirectory) GetByID(ctx context.Context, id int64) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

type MockPropertyDirectory struct {
	mock.Mock
}

func (m *MockPropertyDirectory) GetByID(ctx context.Context, id int64) (*property.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

func (m *MockPropertyDirectory) UpdateStatus(ctx context.Context, id int64, status property.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockActivityRecorder struct {
	mock.Mock
}

func (m *MockActivityRecorder) Record(ctx context.Context, a *activity.Activity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyBookingConfirmed(ctx context.Context, agentID, bookingID, clientID int64) error {
	args := m.Called(ctx, agentID, bookingID, clientID)
	return args.Error(0)
}

func newTestService() (*Service, *MockRepository, *MockClientDirectory, *MockPropertyDirectory, *MockActivityRecorder, *MockNotificationSender) {
	repo := new(MockRepository)
	clients := new(MockClientDirectory)
	props := new(MockPropertyDirectory)
	acts := new(MockActivityRecorder)
	notifs := new(MockNotificationSender)
	svc := NewService(repo, clients, props, acts, notifs)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, repo, clients, props, acts, notifs
}

func TestService_Create_Viewing(t *testing.T) {
	svc, repo, clients, props, acts, _ := newTestService()

	at := time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)
	clients.On("GetByID", mock.Anything, int64(5)).Return(&client.Client{ID: 5}, nil)
	props.On("GetByID", mock.Anything, int64(10)).Return(&property.Property{ID: 10, Status: property.StatusAvailable}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	acts.On("Record", mock.Anything, mock.Anything).Return(nil)

	b, err := svc.Create(context.Background(), 2, &CreateBookingRequest{
		ClientID:    5,
		PropertyID:  10,
		Kind:        "viewing",
		ScheduledAt: &at,
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, int64(2), b.AgentID)
}

func TestService_Create_ViewingInThePast(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	at := time.Date(2025, 5, 30, 15, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), 2, &CreateBookingRequest{
		ClientID:    5,
		PropertyID:  10,
		Kind:        "viewing",
		ScheduledAt: &at,
	})

	assert.ErrorIs(t, err, ErrPastSchedule)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_ReservationOnHeldProperty(t *testing.T) {
	svc, repo, clients, props, _, _ := newTestService()

	clients.On("GetByID", mock.Anything, int64(5)).Return(&client.Client{ID: 5}, nil)
	props.On("GetByID", mock.Anything, int64(10)).Return(&property.Property{ID: 10, Status: property.StatusAvailable}, nil)
	repo.On("HasActiveReservation", mock.Anything, int64(10)).Return(true, nil)

	_, err := svc.Create(context.Background(), 2, &CreateBookingRequest{
		ClientID:   5,
		PropertyID: 10,
		Kind:       "reservation",
	})

	assert.ErrorIs(t, err, ErrPropertyHeld)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_ReservationOnReservedUnit(t *testing.T) {
	svc, repo, clients, props, _, _ := newTestService()

	clients.On("GetByID", mock.Anything, int64(5)).Return(&client.Client{ID: 5}, nil)
	props.On("GetByID", mock.Anything, int64(10)).Return(&property.Property{ID: 10, Status: property.StatusReserved}, nil)

	_, err := svc.Create(context.Background(), 2, &CreateBookingRequest{
		ClientID:   5,
		PropertyID: 10,
		Kind:       "reservation",
	})

	assert.ErrorIs(t, err, ErrPropertyHeld)
	repo.AssertNotCalled(t, "HasActiveReservation", mock.Anything, mock.Anything)
}

func TestService_Create_UnknownClient(t *testing.T) {
	svc, repo, clients, _, _, _ := newTestService()

	clients.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := svc.Create(context.Background(), 2, &CreateBookingRequest{
		ClientID:   99,
		PropertyID: 10,
		Kind:       "reservation",
	})

	assert.ErrorIs(t, err, ErrClientNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Confirm_ReservesUnitAndNotifies(t *testing.T) {
	svc, repo, _, props, acts, notifs := newTestService()

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Booking{
		ID:         1,
		ClientID:   5,
		PropertyID: 10,
		AgentID:    2,
		Kind:       KindReservation,
		Status:     StatusPending,
	}, nil)
	repo.On("UpdateStatus", mock.Anything, int64(1), StatusConfirmed).Return(nil)
	props.On("UpdateStatus", mock.Anything, int64(10), property.StatusReserved).Return(nil)
	acts.On("Record", mock.Anything, mock.Anything).Return(nil)
	notifs.On("NotifyBookingConfirmed", mock.Anything, int64(2), int64(1), int64(5)).Return(nil)

	b, err := svc.Confirm(context.Background(), 3, 1)

	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, b.Status)
	props.AssertCalled(t, "UpdateStatus", mock.Anything, int64(10), property.StatusReserved)
	notifs.AssertExpectations(t)
}

func TestService_Confirm_ViewingLeavesUnitAlone(t *testing.T) {
	svc, repo, _, props, acts, notifs := newTestService()

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Booking{
		ID:         1,
		ClientID:   5,
		PropertyID: 10,
		AgentID:    2,
		Kind:       KindViewing,
		Status:     StatusPending,
	}, nil)
	repo.On("UpdateStatus", mock.Anything, int64(1), StatusConfirmed).Return(nil)
	acts.On("Record", mock.Anything, mock.Anything).Return(nil)
	notifs.On("NotifyBookingConfirmed", mock.Anything, int64(2), int64(1), int64(5)).Return(nil)

	_, err := svc.Confirm(context.Background(), 3, 1)

	assert.NoError(t, err)
	props.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Confirm_AlreadyCancelled(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Booking{
		ID:     1,
		Status: StatusCancelled,
	}, nil)

	_, err := svc.Confirm(context.Background(), 3, 1)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Cancel_WithoutReason(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	_, err := svc.Cancel(context.Background(), 3, 1, "  ")

	assert.ErrorIs(t, err, ErrCancelNeedsReason)
	repo.AssertNotCalled(t, "CancelWithReason", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Cancel_ReleasesConfirmedReservation(t *testing.T) {
	svc, repo, _, props, acts, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Booking{
		ID:         1,
		PropertyID: 10,
		Kind:       KindReservation,
		Status:     StatusConfirmed,
	}, nil)
	repo.On("CancelWithReason", mock.Anything, int64(1), "client backed out").Return(nil)
	props.On("UpdateStatus", mock.Anything, int64(10), property.StatusAvailable).Return(nil)
	acts.On("Record", mock.Anything, mock.Anything).Return(nil)

	b, err := svc.Cancel(context.Background(), 3, 1, "client backed out")

	assert.NoError(t, err)
	assert.Equal(t, StatusCancelled, b.Status)
	assert.Equal(t, "client backed out", b.CancelReason)
	props.AssertCalled(t, "UpdateStatus", mock.Anything, int64(10), property.StatusAvailable)
}

func TestService_Cancel_CompletedBookingRejected(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Booking{
		ID:     1,
		Status: StatusCompleted,
	}, nil)

	_, err := svc.Cancel(context.Background(), 3, 1, "too late")

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_UpdateDeposit_ConfirmsPendingBooking(t *testing.T) {
	svc, repo, _, props, acts, notifs := newTestService()

	pending := &Booking{
		ID:         1,
		ClientID:   5,
		PropertyID: 10,
		AgentID:    2,
		Kind:       KindReservation,
		Status:     StatusPending,
	}
	repo.On("GetByID", mock.Anything, int64(1)).Return(pending, nil)
	repo.On("UpdateDeposit", mock.Anything, int64(1), 50000.0).Return(nil)
	repo.On("UpdateStatus", mock.Anything, int64(1), StatusConfirmed).Return(nil)
	props.On("UpdateStatus", mock.Anything, int64(10), property.StatusReserved).Return(nil)
	acts.On("Record", mock.Anything, mock.Anything).Return(nil)
	notifs.On("NotifyBookingConfirmed", mock.Anything, int64(2), int64(1), int64(5)).Return(nil)

	b, err := svc.UpdateDeposit(context.Background(), 3, 1, 50000)

	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, b.Status)
	repo.AssertCalled(t, "UpdateStatus", mock.Anything, int64(1), StatusConfirmed)
}

func TestService_UpdateDeposit_NegativeAmount(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	_, err := svc.UpdateDeposit(context.Background(), 3, 1, -1)

	assert.ErrorIs(t, err, ErrInvalidDeposit)
	repo.AssertNotCalled(t, "UpdateDeposit", mock.Anything, mock.Anything, mock.Anything)
}
