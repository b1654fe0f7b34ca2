package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gentlecare/internal/database"
	"gentlecare/internal/domain"
	"gentlecare/internal/middleware"
	"gentlecare/internal/modules/access"
	"gentlecare/internal/modules/appointment"
	"gentlecare/internal/modules/auth"
	"gentlecare/internal/modules/contact"
	"gentlecare/internal/modules/health"
	"gentlecare/internal/modules/location"
	"gentlecare/internal/modules/meal"
	"gentlecare/internal/modules/medication"
	"gentlecare/internal/modules/notification"
	"gentlecare/internal/notifier"
	jwtsvc "gentlecare/internal/pkg/jwt"
	"gentlecare/internal/realtime"
	"gentlecare/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testSuite struct {
	router *gin.Engine
	db     *gorm.DB
	engine *notifier.Engine
	stores *notifier.StoreSet
}

type testResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *errorDetail           `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func setupSuite(t *testing.T) *testSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.ElderProfile{},
		&domain.CaretakerProfile{},
		&domain.Medication{},
		&domain.MedicationLog{},
		&domain.Meal{},
		&domain.Appointment{},
		&domain.HealthRecord{},
		&domain.EmergencyContact{},
		&domain.LocationLog{},
		&domain.Notification{},
		&domain.KVEntry{},
	))

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	medicationRepo := repository.NewMedicationRepository(db)
	mealRepo := repository.NewMealRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	healthRepo := repository.NewHealthRecordRepository(db)
	contactRepo := repository.NewContactRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	kvRepo := repository.NewKVRepository(db)

	j := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)

	hub := realtime.NewHub()
	publisher := realtime.NewPublisher(hub)
	scope := access.NewResolver(profileRepo)

	stores := notifier.NewStoreSet(kvRepo)
	sink := notifier.NewSink(realtime.NewHubDeliverer(hub), stores, kvRepo)
	source := notifier.NewRepoSource(profileRepo, medicationRepo, mealRepo, appointmentRepo, healthRepo)
	engine := notifier.NewEngine(source, sink, notifier.DefaultPolicy())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	auth.NewHandler(auth.NewService(userRepo, profileRepo, j, publisher)).RegisterRoutes(api)

	protected := api.Group("/")
	protected.Use(middleware.Auth(j))
	{
		auth.NewHandler(auth.NewService(userRepo, profileRepo, j, publisher)).RegisterProtectedRoutes(protected)
		medication.NewHandler(medication.NewService(medicationRepo, scope, notificationRepo, publisher)).RegisterRoutes(protected)
		meal.NewHandler(meal.NewService(mealRepo, scope, notificationRepo, publisher)).RegisterRoutes(protected)
		appointment.NewHandler(appointment.NewService(appointmentRepo, scope, notificationRepo, publisher)).RegisterRoutes(protected)
		health.NewHandler(health.NewService(healthRepo, scope, notificationRepo, publisher)).RegisterRoutes(protected)
		contact.NewHandler(contact.NewService(contactRepo, scope)).RegisterRoutes(protected)
		location.NewHandler(location.NewService(locationRepo, scope, publisher)).RegisterRoutes(protected)
		notification.NewHandler(notification.NewService(notificationRepo, stores, sink)).RegisterRoutes(protected)
	}

	return &testSuite{router: r, db: db, engine: engine, stores: stores}
}

func (s *testSuite) request(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, testResponse) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp testResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func (s *testSuite) signup(t *testing.T, email, fullName, userType string) string {
	w, resp := s.request(t, http.MethodPost, "/api/auth/signup", "", map[string]interface{}{
		"email":     email,
		"password":  "secret123",
		"full_name": fullName,
		"user_type": userType,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token, _ := resp.Data["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

// linkPair signs up an elder and a caretaker and links them. Returns both
// tokens.
func (s *testSuite) linkPair(t *testing.T) (elderToken, caretakerToken string) {
	elderToken = s.signup(t, "rose@example.com", "Rose Thompson", "elder")
	caretakerToken = s.signup(t, "maria@example.com", "Maria Thompson", "caretaker")

	w, _ := s.request(t, http.MethodPost, "/api/auth/link-caretaker", elderToken, map[string]interface{}{
		"caretaker_email": "maria@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return elderToken, caretakerToken
}

func TestSignupLoginFlow(t *testing.T) {
	s := setupSuite(t)

	s.signup(t, "rose@example.com", "Rose Thompson", "elder")

	// duplicate email rejected
	w, resp := s.request(t, http.MethodPost, "/api/auth/signup", "", map[string]interface{}{
		"email":     "rose@example.com",
		"password":  "secret123",
		"full_name": "Someone Else",
		"user_type": "elder",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "EMAIL_TAKEN", resp.Error.Code)

	// login
	w, resp = s.request(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "rose@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, resp.Data["access_token"])

	// wrong password
	w, _ = s.request(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "rose@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMedicationFlow(t *testing.T) {
	s := setupSuite(t)
	elderToken, caretakerToken := s.linkPair(t)

	// elder adds a medication
	w, resp := s.request(t, http.MethodPost, "/api/medications", elderToken, map[string]interface{}{
		"name":   "Lisinopril",
		"dosage": "10mg",
		"time":   "8:00 AM",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	medID := resp.Data["medication_id"].(float64)

	// both sides see it
	for _, token := range []string{elderToken, caretakerToken} {
		w, resp = s.request(t, http.MethodGet, "/api/medications", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		meds := resp.Data["medications"].([]interface{})
		require.Len(t, meds, 1)
	}

	// elder logs the dose
	w, _ = s.request(t, http.MethodPost, fmt.Sprintf("/api/medications/%.0f/log", medID), elderToken, map[string]interface{}{
		"status": "taken",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// the caretaker's feed has the entry
	w, resp = s.request(t, http.MethodGet, "/api/notifications", caretakerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := resp.Data["notifications"].([]interface{})
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "Medication Taken", first["title"])
	assert.Equal(t, float64(1), resp.Data["unread_count"])

	// mark it read
	id := first["id"].(float64)
	w, _ = s.request(t, http.MethodPut, fmt.Sprintf("/api/notifications/%.0f/read", id), caretakerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = s.request(t, http.MethodGet, "/api/notifications", caretakerToken, nil)
	assert.Equal(t, float64(0), resp.Data["unread_count"])
}

func TestMedicationAccessScoping(t *testing.T) {
	s := setupSuite(t)
	elderToken, _ := s.linkPair(t)

	// a second, unlinked elder
	otherToken := s.signup(t, "other@example.com", "Other Elder", "elder")

	w, resp := s.request(t, http.MethodPost, "/api/medications", elderToken, map[string]interface{}{
		"name": "Lisinopril",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	medID := resp.Data["medication_id"].(float64)

	// the other elder cannot log it
	w, _ = s.request(t, http.MethodPost, fmt.Sprintf("/api/medications/%.0f/log", medID), otherToken, map[string]interface{}{})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// nor see it
	w, resp = s.request(t, http.MethodGet, "/api/medications", otherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.Data["medications"])
}

func TestReminderPassFillsUserLogs(t *testing.T) {
	s := setupSuite(t)
	elderToken, caretakerToken := s.linkPair(t)

	// an appointment 23.5 hours out always lands in the next-day reminder
	// window, regardless of when the test runs
	w, _ := s.request(t, http.MethodPost, "/api/appointments", elderToken, map[string]interface{}{
		"title":            "Cardiology Checkup",
		"appointment_date": time.Now().Add(23*time.Hour + 30*time.Minute).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	report := s.engine.RunPass(context.Background())
	require.Equal(t, 1, report.Elders)

	w, resp := s.request(t, http.MethodGet, "/api/reminders", elderToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	reminders := resp.Data["reminders"].([]interface{})
	assert.NotEmpty(t, reminders)

	w, resp = s.request(t, http.MethodGet, "/api/reminders", caretakerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, resp.Data["reminders"])

	// clearing empties the elder's log only
	w, _ = s.request(t, http.MethodDelete, "/api/reminders", elderToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = s.request(t, http.MethodGet, "/api/reminders", elderToken, nil)
	assert.Empty(t, resp.Data["reminders"])

	w, resp = s.request(t, http.MethodGet, "/api/reminders", caretakerToken, nil)
	assert.NotEmpty(t, resp.Data["reminders"])
}

func TestAppointmentAndHealthFlow(t *testing.T) {
	s := setupSuite(t)
	elderToken, caretakerToken := s.linkPair(t)

	w, resp := s.request(t, http.MethodPost, "/api/appointments", caretakerToken, map[string]interface{}{
		"elder_id":         1,
		"title":            "Cardiology Checkup",
		"appointment_date": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	aptID := resp.Data["appointment_id"].(float64)

	// elder sees it
	w, resp = s.request(t, http.MethodGet, "/api/appointments", elderToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp.Data["appointments"], 1)

	// complete it
	w, _ = s.request(t, http.MethodPut, fmt.Sprintf("/api/appointments/%.0f/status", aptID), caretakerToken, map[string]interface{}{
		"status": "completed",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// elder logs vitals, caretaker gets a feed entry
	w, _ = s.request(t, http.MethodPost, "/api/health-records", elderToken, map[string]interface{}{
		"type":  "blood_pressure",
		"value": "128/82",
		"unit":  "mmHg",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, resp = s.request(t, http.MethodGet, "/api/notifications", caretakerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, resp.Data["notifications"])
}

func TestLocationFlow(t *testing.T) {
	s := setupSuite(t)
	elderToken, caretakerToken := s.linkPair(t)

	// caretaker cannot report a location
	w, _ := s.request(t, http.MethodPost, "/api/location", caretakerToken, map[string]interface{}{
		"latitude":  43.238949,
		"longitude": 76.889709,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.request(t, http.MethodPost, "/api/location", elderToken, map[string]interface{}{
		"latitude":  43.238949,
		"longitude": 76.889709,
		"accuracy":  5.0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, resp := s.request(t, http.MethodGet, "/api/location/latest?elder_id=1", caretakerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	loc := resp.Data["location"].(map[string]interface{})
	assert.InDelta(t, 43.238949, loc["latitude"], 1e-6)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	s := setupSuite(t)

	for _, path := range []string{"/api/medications", "/api/notifications", "/api/reminders"} {
		w, _ := s.request(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
