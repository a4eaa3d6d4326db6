package sale

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

func (m *MockRepository) CreateWithInstallments(ctx context.Context, s *Sale, installments []Installment) error {
	args := m.Called(ctx, s, installments)
	if args.Error(0) == nil {
		s.ID = 401
		s.Installments = installments
	}
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Sale), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, f ListFilter) ([]Sale, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]Sale), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) GetInstallment(ctx context.Context, saleID int64, seq int) (*Installment, error) {
	args := m.Called(ctx, saleID, seq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Installment), args.Error(1)
}

func (m *MockRepository) MarkInstallmentPaid(ctx context.Context, installmentID int64) error {
	args := m.Called(ctx, installmentID)
	return args.Error(0)
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

func (m *MockNotificationSender) NotifySaleRecorded(ctx context.Context, agentID, saleID, clientID int64, amount float64) error {
	args := m.Called(ctx, agentID, saleID, clientID, amount)
	return args.Error(0)
}

func newTestService() (*Service, *MockRepository, *MockClientDirectory, *MockPropertyDirectory, *MockActivityRecorder, *MockNotificationSender) {
	repo := new(MockRepository)
	clients := new(MockClientDirectory)
	props := new(MockPropertyDirectory)
	acts := new(MockActivityRecorder)
	notifs := new(MockNotificationSender)
	svc := NewService(repo, clients, props, acts, notifs)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return svc, repo, clients, props, acts, notifs
}

func TestSplitCommission_EvenSplit(t *testing.T) {
	firstDue := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	out := SplitCommission(30000, 3, firstDue)

	assert.Len(t, out, 3)
	assert.Equal(t, 10000.0, out[0].Amount)
	assert.Equal(t, 10000.0, out[2].Amount)
	assert.Equal(t, 1, out[0].Seq)
	assert.Equal(t, 3, out[2].Seq)
	assert.Equal(t, firstDue, out[0].DueDate)
	assert.Equal(t, firstDue.AddDate(0, 2, 0), out[2].DueDate)
}

func TestSplitCommission_RoundingDriftOnLastSlice(t *testing.T) {
	out := SplitCommission(100, 3, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 33.33, out[0].Amount)
	assert.Equal(t, 33.33, out[1].Amount)
	assert.Equal(t, 33.34, out[2].Amount)

	var sum float64
	for _, ins := range out {
		sum += ins.Amount
	}
	assert.InDelta(t, 100, sum, 0.001)
}

func TestService_Create_Success(t *testing.T) {
	svc, repo, clients, props, acts, notifs := newTestService()

	clients.On("GetByID", mock.Anything, int64(5)).Return(&client.Client{ID: 5}, nil)
	props.On("GetByID", mock.Anything, int64(10)).Return(&property.Property{ID: 10, Status: property.StatusReserved}, nil)
	repo.On("CreateWithInstallments", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	acts.On("Record", mock.Anything, mock.Anything).Return(nil)
	notifs.On("NotifySaleRecorded", mock.Anything, int64(2), int64(401), int64(5), 1000000.0).Return(nil)

	s, err := svc.Create(context.Background(), 2, &CreateSaleRequest{
		ClientID:         5,
		PropertyID:       10,
		SalePrice:        1000000,
		CommissionRate:   2.5,
		InstallmentCount: 4,
	})

	assert.NoError(t, err)
	assert.Equal(t, 25000.0, s.CommissionAmount)
	assert.Len(t, s.Installments, 4)
	assert.Equal(t, 6250.0, s.Installments[0].Amount)
	// first installment falls one month after closing
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), s.Installments[0].DueDate)
	notifs.AssertExpectations(t)
}

func TestService_Create_PropertyAlreadySold(t *testing.T) {
	svc, repo, clients, props, _, _ := newTestService()

	clients.On("GetByID", mock.Anything, int64(5)).Return(&client.Client{ID: 5}, nil)
	props.On("GetByID", mock.Anything, int64(10)).Return(&property.Property{ID: 10, Status: property.StatusSold}, nil)

	_, err := svc.Create(context.Background(), 2, &CreateSaleRequest{
		ClientID:         5,
		PropertyID:       10,
		SalePrice:        1000000,
		CommissionRate:   2.5,
		InstallmentCount: 4,
	})

	assert.ErrorIs(t, err, ErrPropertySold)
	repo.AssertNotCalled(t, "CreateWithInstallments", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_LosesRace(t *testing.T) {
	svc, repo, clients, props, _, notifs := newTestService()

	clients.On("GetByID", mock.Anything, int64(5)).Return(&client.Client{ID: 5}, nil)
	props.On("GetByID", mock.Anything, int64(10)).Return(&property.Property{ID: 10, Status: property.StatusReserved}, nil)
	repo.On("CreateWithInstallments", mock.Anything, mock.Anything, mock.Anything).Return(ErrPropertySold)

	_, err := svc.Create(context.Background(), 2, &CreateSaleRequest{
		ClientID:         5,
		PropertyID:       10,
		SalePrice:        1000000,
		CommissionRate:   2.5,
		InstallmentCount: 4,
	})

	assert.ErrorIs(t, err, ErrPropertySold)
	notifs.AssertNotCalled(t, "NotifySaleRecorded", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_InvalidRate(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	_, err := svc.Create(context.Background(), 2, &CreateSaleRequest{
		ClientID:         5,
		PropertyID:       10,
		SalePrice:        1000000,
		CommissionRate:   120,
		InstallmentCount: 4,
	})

	assert.ErrorIs(t, err, ErrInvalidRate)
	repo.AssertNotCalled(t, "CreateWithInstallments", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_ZeroInstallments(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	_, err := svc.Create(context.Background(), 2, &CreateSaleRequest{
		ClientID:         5,
		PropertyID:       10,
		SalePrice:        1000000,
		CommissionRate:   2.5,
		InstallmentCount: 0,
	})

	assert.ErrorIs(t, err, ErrInvalidInstallments)
}

func TestService_MarkInstallmentPaid(t *testing.T) {
	svc, repo, _, _, acts, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Sale{ID: 1}, nil)
	repo.On("GetInstallment", mock.Anything, int64(1), 2).Return(&Installment{
		ID:     12,
		SaleID: 1,
		Seq:    2,
		Status: InstallmentPending,
	}, nil)
	repo.On("MarkInstallmentPaid", mock.Anything, int64(12)).Return(nil)
	acts.On("Record", mock.Anything, mock.Anything).Return(nil)

	ins, err := svc.MarkInstallmentPaid(context.Background(), 2, 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, InstallmentPaid, ins.Status)
}

func TestService_MarkInstallmentPaid_Idempotent(t *testing.T) {
	svc, repo, _, _, acts, _ := newTestService()

	paidAt := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Sale{ID: 1}, nil)
	repo.On("GetInstallment", mock.Anything, int64(1), 2).Return(&Installment{
		ID:     12,
		SaleID: 1,
		Seq:    2,
		Status: InstallmentPaid,
		PaidAt: &paidAt,
	}, nil)

	ins, err := svc.MarkInstallmentPaid(context.Background(), 2, 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, InstallmentPaid, ins.Status)
	repo.AssertNotCalled(t, "MarkInstallmentPaid", mock.Anything, mock.Anything)
	acts.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestService_MarkInstallmentPaid_UnknownSeq(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Sale{ID: 1}, nil)
	repo.On("GetInstallment", mock.Anything, int64(1), 9).Return(nil, nil)

	_, err := svc.MarkInstallmentPaid(context.Background(), 2, 1, 9)

	assert.ErrorIs(t, err, ErrInstallmentNotFound)
}
