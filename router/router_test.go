package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return SetupRouter(db), db
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestCategoryCreateThenConflict(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(r, http.MethodPost, "/categories", gin.H{"name": "Desserts", "description": "Sweet"})
	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Desserts", body["name"])
	assert.NotZero(t, body["id"])

	w = doJSON(r, http.MethodPost, "/categories", gin.H{"name": "Desserts"})
	assert.Equal(t, http.StatusConflict, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "Category name already exists", body["error"])
	assert.Equal(t, float64(http.StatusConflict), body["code"])
}

func TestUserRoutesAndPasswordHidden(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(r, http.MethodPost, "/users", gin.H{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "customer", body["role"])
	assert.NotContains(t, body, "password")

	// The literal email segment must win over the :id route.
	w = doJSON(r, http.MethodGet, "/users/email/alice@example.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice@example.com", decodeBody(t, w)["email"])

	w = doJSON(r, http.MethodGet, "/users/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeBody(t, w)["error"])
}

func TestUserAuthenticateEndpoint(t *testing.T) {
	r, db := setupTestRouter(t)
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	db.Create(&models.User{Name: "Alice", Email: "alice@example.com", Password: string(hashed), Role: models.RoleCustomer})

	w := doJSON(r, http.MethodPost, "/users/authenticate", gin.H{"email": "alice@example.com", "password": "password123"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice@example.com", decodeBody(t, w)["email"])

	w = doJSON(r, http.MethodPost, "/users/authenticate", gin.H{"email": "alice@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
}

func TestInvalidRequestBodyRejected(t *testing.T) {
	r, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decodeBody(t, w)["error"])
}

func TestDeleteEnvelope(t *testing.T) {
	r, db := setupTestRouter(t)
	db.Create(&models.Category{Name: "Mains"})

	w := doJSON(r, http.MethodDelete, "/categories/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Category deleted", body["message"])

	w = doJSON(r, http.MethodDelete, "/categories/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderStatusRoute(t *testing.T) {
	r, db := setupTestRouter(t)
	db.Create(&models.User{Name: "Alice", Email: "alice@example.com", Password: "x", Role: models.RoleCustomer})
	db.Create(&models.Order{UserID: 1, TotalAmount: 30, Status: models.OrderStatusPending})

	w := doJSON(r, http.MethodPut, "/orders/1/status", gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "confirmed", decodeBody(t, w)["status"])

	w = doJSON(r, http.MethodPut, "/orders/1/status", gin.H{"status": "teleported"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReservationAvailabilityRoute(t *testing.T) {
	r, db := setupTestRouter(t)
	db.Create(&models.User{Name: "Alice", Email: "alice@example.com", Password: "x", Role: models.RoleCustomer})
	for i := 0; i < 3; i++ {
		db.Create(&models.Reservation{UserID: 1, ReservationDate: "2099-06-01", ReservationTime: "19:00", Guests: 2, Status: models.ReservationStatusConfirmed})
	}

	w := doJSON(r, http.MethodGet, "/reservations/availability?date=2099-06-01&time=19:00", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["available"])
	assert.Equal(t, float64(3), body["reservations_count"])
	assert.Equal(t, float64(7), body["slots_remaining"])

	w = doJSON(r, http.MethodGet, "/reservations/availability?date=2099-06-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReservationCapacityOverHTTP(t *testing.T) {
	r, db := setupTestRouter(t)
	db.Create(&models.User{Name: "Alice", Email: "alice@example.com", Password: "x", Role: models.RoleCustomer})
	for i := 0; i < 10; i++ {
		db.Create(&models.Reservation{UserID: 1, ReservationDate: "2099-06-01", ReservationTime: "19:00", Guests: 2, Status: models.ReservationStatusConfirmed})
	}

	w := doJSON(r, http.MethodPost, "/reservations", gin.H{
		"user_id":          1,
		"reservation_date": "2099-06-01",
		"reservation_time": "19:00",
		"guests":           2,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "No tables available for this time slot. Please choose another time.", decodeBody(t, w)["error"])
}

func TestNoRouteEnvelope(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(r, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Route not found", body["error"])
	assert.Equal(t, float64(http.StatusNotFound), body["code"])
}

func TestCORSPreflight(t *testing.T) {
	r, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/users", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestPingAndBanner(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decodeBody(t, w)["message"])

	w = doJSON(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
