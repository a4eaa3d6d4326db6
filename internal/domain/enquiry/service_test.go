package enquiry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"estatecrm/internal/domain/activity"
	"estatecrm/internal/domain/agent"
	"estatecrm/internal/domain/client"
	"estatecrm/internal/domain/lead"
	"estatecrm/internal/domain/note"
	"estatecrm/internal/domain/ownership"
	"estatecrm/internal/pkg/dbtypes"
	"estatecrm/internal/pkg/policy"
)

// Mock repositories

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, e *Enquiry) error {
	args := m.Called(ctx, e)
	if e != nil {
		e.ID = 101
	}
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Enquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Enquiry), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, f ListFilter) ([]Enquiry, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]Enquiry), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) Update(ctx context.Context, e *Enquiry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRepository) SetOwnerAgent(ctx context.Context, id, agentID int64) error {
	args := m.Called(ctx, id, agentID)
	return args.Error(0)
}

func (m *MockRepository) SetPool(ctx context.Context, id int64, pool ownership.Pool) error {
	args := m.Called(ctx, id, pool)
	return args.Error(0)
}

func (m *MockRepository) ClearOwner(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Convert(ctx context.Context, enquiryID int64, cl *client.Client, ld *lead.Lead) error {
	args := m.Called(ctx, enquiryID, cl, ld)
	if args.Error(0) == nil {
		cl.ID = 55
		ld.ID = 77
		ld.ClientID = cl.ID
	}
	return args.Error(0)
}

type MockAgentDirectory struct {
	mock.Mock
}

func (m *MockAgentDirectory) GetByID(ctx context.Context, id int64) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, n *note.Note) error {
	args := m.Called(ctx, n)
	if n != nil {
		n.ID = 11
	}
	return args.Error(0)
}

func (m *MockNoteRepository) GetByID(ctx context.Context, id int64) (*note.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*note.Note), args.Error(1)
}

func (m *MockNoteRepository) ListForEnquiry(ctx context.Context, enquiryID int64) ([]note.Note, error) {
	args := m.Called(ctx, enquiryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]note.Note), args.Error(1)
}

func (m *MockNoteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
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

func (m *MockNotificationSender) NotifyEnquiryAssigned(ctx context.Context, agentID, enquiryID int64, enquiryName string) error {
	args := m.Called(ctx, agentID, enquiryID, enquiryName)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyEnquiryConverted(ctx context.Context, agentID, enquiryID, clientID, leadID int64) error {
	args := m.Called(ctx, agentID, enquiryID, clientID, leadID)
	return args.Error(0)
}

func newTestService() (*Service, *MockRepository, *MockAgentDirectory, *MockNoteRepository, *MockActivityRecorder, *MockNotificationSender) {
	repo := new(MockRepository)
	agents := new(MockAgentDirectory)
	notes := new(MockNoteRepository)
	acts := new(MockActivityRecorder)
	notifs := new(MockNotificationSender)
	return NewService(repo, agents, notes, acts, notifs), repo, agents, notes, acts, notifs
}

func TestService_Convert_Success(t *testing.T) {
	svc, repo, _, _, acts, notifs := newTestService()

	agentID := int64(9)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Enquiry{
		ID:           1,
		Name:         "Aigerim T",
		Email:        "aigerim@example.com",
		Status:       StatusContacted,
		Segment:      "500k-1m",
		OwnerAgentID: &agentID,
	}, nil)
	repo.On("Convert", mock.Anything, int64(1), mock.Anything, mock.Anything).Return(nil)
	acts.On("Record", mock.Anything, mock.Anything).Return(nil)
	notifs.On("NotifyEnquiryConverted", mock.Anything, int64(9), int64(1), int64(55), int64(77)).Return(nil)

	res, err := svc.Convert(context.Background(), 2, 1, &ConvertRequest{
		LeadTitle:      "Marina View 2BR",
		EstimatedValue: 850000,
		Country:        "KZ",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(55), res.ClientID)
	assert.Equal(t, int64(77), res.LeadID)
	assert.NotEmpty(t, res.LeadNo)

	cl := repo.Calls[1].Arguments.Get(2).(*client.Client)
	ld := repo.Calls[1].Arguments.Get(3).(*lead.Lead)
	assert.Equal(t, "Aigerim T", cl.Name)
	assert.Equal(t, "aigerim@example.com", cl.Email)
	// budget range defaults from the enquiry segment when absent
	assert.Equal(t, "500k-1m", cl.BudgetRange)
	assert.Equal(t, lead.StageNewEnquiry, ld.Stage)
	assert.Equal(t, &agentID, ld.OwnerAgentID)

	notifs.AssertExpectations(t)
}

func TestService_Convert_InheritsPoolOwnership(t *testing.T) {
	svc, repo, _, _, acts, notifs := newTestService()

	repo.On("GetByID", mock.Anything, int64(2)).Return(&Enquiry{
		ID:     2,
		Name:   "Pool Enquiry",
		Status: StatusNew,
		Pool:   ownership.Pool1,
	}, nil)
	repo.On("Convert", mock.Anything, int64(2), mock.Anything, mock.Anything).Return(nil)
	acts.On("Record", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Convert(context.Background(), 2, 2, &ConvertRequest{LeadTitle: "Test Lead"})

	assert.NoError(t, err)
	ld := repo.Calls[1].Arguments.Get(3).(*lead.Lead)
	assert.Nil(t, ld.OwnerAgentID)
	assert.Equal(t, ownership.Pool1, ld.Pool)
	// no individual owner, so nobody to notify
	notifs.AssertNotCalled(t, "NotifyEnquiryConverted", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Convert_BlankTitle(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	_, err := svc.Convert(context.Background(), 2, 1, &ConvertRequest{LeadTitle: "   "})

	assert.ErrorIs(t, err, ErrBlankLeadTitle)
	repo.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Convert_AlreadyConverted(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	clientID := int64(5)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Enquiry{
		ID:                1,
		Status:            StatusConverted,
		ConvertedClientID: &clientID,
	}, nil)

	_, err := svc.Convert(context.Background(), 2, 1, &ConvertRequest{LeadTitle: "Test Lead"})

	assert.ErrorIs(t, err, ErrAlreadyConverted)
	repo.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Convert_LosesRace(t *testing.T) {
	svc, repo, _, _, _, notifs := newTestService()

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Enquiry{
		ID:     1,
		Status: StatusNew,
	}, nil)
	repo.On("Convert", mock.Anything, int64(1), mock.Anything, mock.Anything).Return(ErrAlreadyConverted)

	_, err := svc.Convert(context.Background(), 2, 1, &ConvertRequest{LeadTitle: "Test Lead"})

	assert.ErrorIs(t, err, ErrAlreadyConverted)
	notifs.AssertNotCalled(t, "NotifyEnquiryConverted", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_RejectsDirectConvertedWrite(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	err := svc.UpdateStatus(context.Background(), 2, 1, StatusConverted)

	assert.ErrorIs(t, err, ErrStatusReserved)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_RejectsLeavingConverted(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	clientID := int64(5)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Enquiry{
		ID:                1,
		Status:            StatusConverted,
		ConvertedClientID: &clientID,
	}, nil)

	err := svc.UpdateStatus(context.Background(), 2, 1, StatusClosed)

	assert.ErrorIs(t, err, ErrStatusReserved)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_SameStatusIsNoOp(t *testing.T) {
	svc, repo, _, _, acts, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Enquiry{
		ID:     1,
		Status: StatusContacted,
	}, nil)

	err := svc.UpdateStatus(context.Background(), 2, 1, StatusContacted)

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	acts.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	err := svc.UpdateStatus(context.Background(), 2, 1, Status("bogus"))

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_AssignPool_InvalidPool(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	err := svc.AssignPool(context.Background(), 2, 1, 4)

	assert.ErrorIs(t, err, ownership.ErrInvalidPool)
	repo.AssertNotCalled(t, "SetPool", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_AssignPool_Success(t *testing.T) {
	svc, repo, _, _, acts, _ := newTestService()

	agentID := int64(4)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Enquiry{
		ID:           1,
		Tags:         dbtypes.Tags{"Investor"},
		OwnerAgentID: &agentID,
	}, nil)
	repo.On("SetPool", mock.Anything, int64(1), ownership.Pool2).Return(nil)
	acts.On("Record", mock.Anything, mock.Anything).Return(nil)

	err := svc.AssignPool(context.Background(), 2, 1, 2)

	assert.NoError(t, err)
	repo.AssertCalled(t, "SetPool", mock.Anything, int64(1), ownership.Pool2)
}

func TestService_AssignAgent_UnknownAgent(t *testing.T) {
	svc, repo, agents, _, _, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Enquiry{ID: 1}, nil)
	agents.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	err := svc.AssignAgent(context.Background(), 2, 1, 99)

	assert.ErrorIs(t, err, agent.ErrAgentNotFound)
	repo.AssertNotCalled(t, "SetOwnerAgent", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_AssignAgent_ClearsPool(t *testing.T) {
	svc, repo, agents, _, acts, notifs := newTestService()

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Enquiry{
		ID:   1,
		Name: "Pooled",
		Pool: ownership.Pool3,
	}, nil)
	agents.On("GetByID", mock.Anything, int64(7)).Return(&agent.Agent{ID: 7, Name: "Dana"}, nil)
	repo.On("SetOwnerAgent", mock.Anything, int64(1), int64(7)).Return(nil)
	acts.On("Record", mock.Anything, mock.Anything).Return(nil)
	notifs.On("NotifyEnquiryAssigned", mock.Anything, int64(7), int64(1), "Pooled").Return(nil)

	err := svc.AssignAgent(context.Background(), 2, 1, 7)

	assert.NoError(t, err)
	// SetOwnerAgent writes both columns in one update, so the pool is
	// cleared by the same write that sets the agent.
	repo.AssertCalled(t, "SetOwnerAgent", mock.Anything, int64(1), int64(7))
	notifs.AssertExpectations(t)
}

func TestService_DeleteNote_AuthorMayDelete(t *testing.T) {
	svc, _, _, notes, _, _ := newTestService()

	enquiryID := int64(1)
	notes.On("GetByID", mock.Anything, int64(11)).Return(&note.Note{
		ID:        11,
		EnquiryID: &enquiryID,
		AuthorID:  2,
	}, nil)
	notes.On("Delete", mock.Anything, int64(11)).Return(nil)

	err := svc.DeleteNote(context.Background(), 2, policy.RoleSalesAgent, 1, 11)

	assert.NoError(t, err)
}

func TestService_DeleteNote_NonAuthorAgentRejected(t *testing.T) {
	svc, _, _, notes, _, _ := newTestService()

	enquiryID := int64(1)
	notes.On("GetByID", mock.Anything, int64(11)).Return(&note.Note{
		ID:        11,
		EnquiryID: &enquiryID,
		AuthorID:  2,
	}, nil)

	err := svc.DeleteNote(context.Background(), 3, policy.RoleSalesAgent, 1, 11)

	assert.ErrorIs(t, err, ErrNoteNotAllowed)
	notes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_DeleteNote_ManagerMayDeleteAny(t *testing.T) {
	svc, _, _, notes, _, _ := newTestService()

	enquiryID := int64(1)
	notes.On("GetByID", mock.Anything, int64(11)).Return(&note.Note{
		ID:        11,
		EnquiryID: &enquiryID,
		AuthorID:  2,
	}, nil)
	notes.On("Delete", mock.Anything, int64(11)).Return(nil)

	err := svc.DeleteNote(context.Background(), 3, policy.RoleSalesManager, 1, 11)

	assert.NoError(t, err)
}

func TestService_DeleteNote_WrongEnquiry(t *testing.T) {
	svc, _, _, notes, _, _ := newTestService()

	otherEnquiry := int64(9)
	notes.On("GetByID", mock.Anything, int64(11)).Return(&note.Note{
		ID:        11,
		EnquiryID: &otherEnquiry,
		AuthorID:  2,
	}, nil)

	err := svc.DeleteNote(context.Background(), 2, policy.RoleSalesAgent, 1, 11)

	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestService_AddNote_InvalidContactType(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	_, err := svc.AddNote(context.Background(), 2, 1, &AddNoteRequest{
		ContactType: "fax",
		Content:     "tried to fax them",
	})

	assert.ErrorIs(t, err, ErrInvalidContact)
}

func TestService_BulkImport(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	res, err := svc.BulkImport(context.Background(), &BulkImportRequest{
		Enquiries: []CreateEnquiryRequest{
			{Name: "One"},
			{Name: "Two"},
			{Name: "Three"},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, res.Imported)
	assert.NotEmpty(t, res.BatchID)
	repo.AssertNumberOfCalls(t, "Create", 3)

	for _, call := range repo.Calls {
		e := call.Arguments.Get(1).(*Enquiry)
		assert.Equal(t, res.BatchID, e.ImportBatchID)
		assert.Equal(t, StatusNew, e.Status)
	}
}

func TestService_BulkImport_Empty(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	_, err := svc.BulkImport(context.Background(), &BulkImportRequest{})

	assert.ErrorIs(t, err, ErrNothingToImport)
}
