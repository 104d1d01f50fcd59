package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant-api/models"
	"restaurant-api/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestRestaurantFlow drives the API end to end: a customer registers, signs
// in, the menu is set up, an order is placed with items, and a table is
// reserved for a future date.
func TestRestaurantFlow(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
	))

	r := router.SetupRouter(db)
	srv := httptest.NewServer(r)
	defer srv.Close()

	post := func(path string, payload interface{}) (*http.Response, map[string]interface{}) {
		raw, _ := json.Marshal(payload)
		resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(raw))
		require.NoError(t, err)
		defer resp.Body.Close()
		var body map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&body)
		return resp, body
	}
	get := func(path string) (*http.Response, []byte) {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return resp, buf.Bytes()
	}

	// Register and sign in.
	resp, user := post("/users", map[string]interface{}{
		"name":     "Bob Diner",
		"email":    "bob@example.com",
		"password": "password123",
		"phone":    "555-0199",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	userID := user["id"].(float64)

	resp, authed := post("/users/authenticate", map[string]interface{}{
		"email":    "bob@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "bob@example.com", authed["email"])

	// Build the menu.
	resp, category := post("/categories", map[string]interface{}{"name": "Pizza", "description": "Stone oven"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	categoryID := category["id"].(float64)

	resp, menuItem := post("/menu-items", map[string]interface{}{
		"category_id": categoryID,
		"name":        "Margherita",
		"price":       12.50,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, menuItem["is_available"])
	menuItemID := menuItem["id"].(float64)

	// Place an order with one line.
	resp, order := post("/orders", map[string]interface{}{
		"user_id":      userID,
		"total_amount": 25.00,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "pending", order["status"])
	orderID := order["id"].(float64)

	resp, line := post("/order-items", map[string]interface{}{
		"order_id":     orderID,
		"menu_item_id": menuItemID,
		"quantity":     2,
		"price":        12.50,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(2), line["quantity"])

	// The order's line items are readable with menu details.
	resp, details := get(fmt.Sprintf("/order-items/order/%.0f/details", orderID))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var lines []map[string]interface{}
	require.NoError(t, json.Unmarshal(details, &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, "Margherita", lines[0]["item_name"])

	// Reserve a table next week.
	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	resp, reservation := post("/reservations", map[string]interface{}{
		"user_id":          userID,
		"reservation_date": date,
		"reservation_time": "19:00",
		"guests":           4,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "pending", reservation["status"])

	resp, availability := get("/reservations/availability?date=" + date + "&time=19:00")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var slot map[string]interface{}
	require.NoError(t, json.Unmarshal(availability, &slot))
	assert.Equal(t, true, slot["available"])
	assert.Equal(t, float64(1), slot["reservations_count"])
	assert.Equal(t, float64(9), slot["slots_remaining"])
}
