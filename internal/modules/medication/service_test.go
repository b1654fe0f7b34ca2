package medication

import (
	"context"
	"testing"
	"time"

	"gentlecare/internal/domain"
	"gentlecare/internal/modules/access"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMedicationRepository struct {
	mock.Mock
}

func (m *MockMedicationRepository) Create(ctx context.Context, med *domain.Medication) error {
	args := m.Called(ctx, med)
	if med != nil {
		med.ID = 301
	}
	return args.Error(0)
}

func (m *MockMedicationRepository) GetByID(ctx context.Context, id int64) (*domain.Medication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Medication), args.Error(1)
}

func (m *MockMedicationRepository) ListActiveByElders(ctx context.Context, elderIDs []int64) ([]domain.Medication, error) {
	args := m.Called(ctx, elderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Medication), args.Error(1)
}

func (m *MockMedicationRepository) Update(ctx context.Context, med *domain.Medication) error {
	args := m.Called(ctx, med)
	return args.Error(0)
}

func (m *MockMedicationRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMedicationRepository) CreateLog(ctx context.Context, l *domain.MedicationLog) error {
	args := m.Called(ctx, l)
	if l != nil {
		l.ID = 401
	}
	return args.Error(0)
}

func (m *MockMedicationRepository) LastTaken(ctx context.Context, medicationID int64) (*time.Time, error) {
	args := m.Called(ctx, medicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetElderByUserID(ctx context.Context, userID int64) (*domain.ElderProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ElderProfile), args.Error(1)
}

func (m *MockProfileRepository) GetElderByID(ctx context.Context, id int64) (*domain.ElderProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ElderProfile), args.Error(1)
}

func (m *MockProfileRepository) EldersOfCaretaker(ctx context.Context, caretakerUserID int64) ([]domain.ElderProfile, error) {
	args := m.Called(ctx, caretakerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ElderProfile), args.Error(1)
}

type MockNotificationCreator struct {
	mock.Mock
}

func (m *MockNotificationCreator) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockEvents struct {
	mock.Mock
}

func (m *MockEvents) MedicationAdded(caretakerUserID, medicationID, elderProfileID int64, name string) {
	m.Called(caretakerUserID, medicationID, elderProfileID, name)
}

func (m *MockEvents) MedicationLogged(caretakerUserID, medicationID, elderProfileID int64, elderName, medicationName, status string, takenAt time.Time) {
	m.Called(caretakerUserID, medicationID, elderProfileID, elderName, medicationName, status, takenAt)
}

func elderProfile() *domain.ElderProfile {
	caretakerID := int64(20)
	return &domain.ElderProfile{
		ID:          5,
		UserID:      10,
		CaretakerID: &caretakerID,
		User:        &domain.User{ID: 10, FullName: "Rose"},
	}
}

func TestList_ElderSeesOwnMedications(t *testing.T) {
	meds := new(MockMedicationRepository)
	profiles := new(MockProfileRepository)

	profiles.On("GetElderByUserID", mock.Anything, int64(10)).Return(elderProfile(), nil)
	meds.On("ListActiveByElders", mock.Anything, []int64{5}).Return([]domain.Medication{
		{ID: 1, ElderID: 5, Name: "Lisinopril", Time: "8:00 AM", IsActive: true},
	}, nil)
	meds.On("LastTaken", mock.Anything, int64(1)).Return(nil, nil)

	svc := NewService(meds, access.NewResolver(profiles), new(MockNotificationCreator), new(MockEvents))

	out, err := svc.List(context.Background(), 10, domain.RoleElder)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Lisinopril", out[0].Name)
	assert.Equal(t, "Rose", out[0].ElderName)
	assert.Nil(t, out[0].LastTaken)
}

func TestCreate_CaretakerNeedsElderID(t *testing.T) {
	svc := NewService(new(MockMedicationRepository), access.NewResolver(new(MockProfileRepository)), new(MockNotificationCreator), new(MockEvents))

	_, err := svc.Create(context.Background(), 20, domain.RoleCaretaker, CreateRequest{Name: "Aspirin"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreate_CaretakerCannotReachUnlinkedElder(t *testing.T) {
	profiles := new(MockProfileRepository)
	profiles.On("EldersOfCaretaker", mock.Anything, int64(20)).Return([]domain.ElderProfile{{ID: 5}}, nil)

	svc := NewService(new(MockMedicationRepository), access.NewResolver(profiles), new(MockNotificationCreator), new(MockEvents))

	_, err := svc.Create(context.Background(), 20, domain.RoleCaretaker, CreateRequest{ElderID: 99, Name: "Aspirin"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreate_ElderEmitsEventToCaretaker(t *testing.T) {
	meds := new(MockMedicationRepository)
	profiles := new(MockProfileRepository)
	events := new(MockEvents)

	profiles.On("GetElderByUserID", mock.Anything, int64(10)).Return(elderProfile(), nil)
	profiles.On("GetElderByID", mock.Anything, int64(5)).Return(elderProfile(), nil)
	meds.On("Create", mock.Anything, mock.AnythingOfType("*domain.Medication")).Return(nil)
	events.On("MedicationAdded", int64(20), int64(301), int64(5), "Aspirin").Return()

	svc := NewService(meds, access.NewResolver(profiles), new(MockNotificationCreator), events)

	m, err := svc.Create(context.Background(), 10, domain.RoleElder, CreateRequest{Name: "Aspirin", Time: "9:00 AM"})
	require.NoError(t, err)
	assert.True(t, m.IsActive)
	assert.Equal(t, int64(5), m.ElderID)
	events.AssertExpectations(t)
}

func TestLogTaken_NotifiesCaretaker(t *testing.T) {
	meds := new(MockMedicationRepository)
	profiles := new(MockProfileRepository)
	notifs := new(MockNotificationCreator)
	events := new(MockEvents)

	med := &domain.Medication{ID: 1, ElderID: 5, Name: "Lisinopril", IsActive: true}
	meds.On("GetByID", mock.Anything, int64(1)).Return(med, nil)
	profiles.On("GetElderByUserID", mock.Anything, int64(10)).Return(elderProfile(), nil)
	profiles.On("GetElderByID", mock.Anything, int64(5)).Return(elderProfile(), nil)
	meds.On("CreateLog", mock.Anything, mock.AnythingOfType("*domain.MedicationLog")).Return(nil)
	notifs.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.RecipientUserID == 20 && n.Type == "medication"
	})).Return(nil)
	events.On("MedicationLogged", int64(20), int64(1), int64(5), "Rose", "Lisinopril", "taken", mock.AnythingOfType("time.Time")).Return()

	svc := NewService(meds, access.NewResolver(profiles), notifs, events)

	l, err := svc.LogTaken(context.Background(), 10, domain.RoleElder, 1, LogRequest{})
	require.NoError(t, err)
	assert.Equal(t, domain.MedicationTaken, l.Status)
	notifs.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestLogTaken_ForeignMedicationForbidden(t *testing.T) {
	meds := new(MockMedicationRepository)
	profiles := new(MockProfileRepository)

	meds.On("GetByID", mock.Anything, int64(1)).Return(&domain.Medication{ID: 1, ElderID: 99}, nil)
	profiles.On("GetElderByUserID", mock.Anything, int64(10)).Return(elderProfile(), nil)

	svc := NewService(meds, access.NewResolver(profiles), new(MockNotificationCreator), new(MockEvents))

	_, err := svc.LogTaken(context.Background(), 10, domain.RoleElder, 1, LogRequest{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdate_PatchesOnlyProvidedFields(t *testing.T) {
	meds := new(MockMedicationRepository)
	profiles := new(MockProfileRepository)

	existing := &domain.Medication{ID: 1, ElderID: 5, Name: "Lisinopril", Dosage: "10mg", Time: "8:00 AM", IsActive: true}
	meds.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
	profiles.On("GetElderByUserID", mock.Anything, int64(10)).Return(elderProfile(), nil)
	meds.On("Update", mock.Anything, mock.AnythingOfType("*domain.Medication")).Return(nil)

	svc := NewService(meds, access.NewResolver(profiles), new(MockNotificationCreator), new(MockEvents))

	newDosage := "20mg"
	m, err := svc.Update(context.Background(), 10, domain.RoleElder, 1, UpdateRequest{Dosage: &newDosage})
	require.NoError(t, err)
	assert.Equal(t, "20mg", m.Dosage)
	assert.Equal(t, "Lisinopril", m.Name)
	assert.Equal(t, "8:00 AM", m.Time)
}
