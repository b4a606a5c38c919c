package handlers_test

import (
	"testing"

	"github.com/commercekit/ecommerce-api/internal/models"
)

func TestCreateUser(t *testing.T) {
	app, db := setupTestApp(t)

	resp := doRequest(t, app, "POST", "/users", map[string]interface{}{
		"name":  "Ana",
		"email": "ana@x.com",
	})
	if resp.StatusCode != 201 {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	result := decodeBody(t, resp)
	if result["name"] != "Ana" || result["email"] != "ana@x.com" {
		t.Errorf("Unexpected user payload: %v", result)
	}
	if result["id"] == nil {
		t.Error("Expected generated id in response")
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 user row, got %d", count)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	app, db := setupTestApp(t)

	resp := doRequest(t, app, "POST", "/users", map[string]interface{}{
		"name":  "Ana",
		"email": "ana@x.com",
	})
	if resp.StatusCode != 201 {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	resp = doRequest(t, app, "POST", "/users", map[string]interface{}{
		"name":  "Bob",
		"email": "ana@x.com",
	})
	if resp.StatusCode != 400 {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}

	result := decodeBody(t, resp)
	if result["message"] != "Email already exists" {
		t.Errorf("Expected 'Email already exists', got %v", result["message"])
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 user row, got %d", count)
	}
}

func TestCreateUserInvalidEmail(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, "POST", "/users", map[string]interface{}{
		"name":  "Ana",
		"email": "not-an-email",
	})
	if resp.StatusCode != 400 {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}
}

func TestCreateUserMissingName(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, "POST", "/users", map[string]interface{}{
		"email": "ana@x.com",
	})
	if resp.StatusCode != 400 {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}
}

func TestGetUserNotFound(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, "GET", "/users/999", nil)
	if resp.StatusCode != 404 {
		t.Fatalf("Expected 404, got %d", resp.StatusCode)
	}

	result := decodeBody(t, resp)
	if result["message"] != "User not found" {
		t.Errorf("Expected 'User not found', got %v", result["message"])
	}
}

func TestUpdateUserPartial(t *testing.T) {
	app, db := setupTestApp(t)
	user := models.User{Name: "Ana", Email: "ana@x.com"}
	db.Create(&user)

	resp := doRequest(t, app, "PUT", "/users/1", map[string]interface{}{
		"address": "1 Main St",
	})
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	result := decodeBody(t, resp)
	if result["name"] != "Ana" {
		t.Errorf("Name changed unexpectedly: %v", result["name"])
	}
	if result["address"] != "1 Main St" {
		t.Errorf("Expected updated address, got %v", result["address"])
	}
}

func TestUpdateUserClearAddress(t *testing.T) {
	app, db := setupTestApp(t)
	addr := "1 Main St"
	user := models.User{Name: "Ana", Address: &addr, Email: "ana@x.com"}
	db.Create(&user)

	// Explicit null clears the address; an absent key would leave it
	resp := doRequest(t, app, "PUT", "/users/1", map[string]interface{}{
		"address": nil,
	})
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	result := decodeBody(t, resp)
	if result["address"] != nil {
		t.Errorf("Expected address cleared, got %v", result["address"])
	}

	var stored models.User
	db.First(&stored, user.ID)
	if stored.Address != nil {
		t.Errorf("Expected stored address NULL, got %q", *stored.Address)
	}
}

func TestDeleteUser(t *testing.T) {
	app, db := setupTestApp(t)
	user := models.User{Name: "Ana", Email: "ana@x.com"}
	db.Create(&user)

	resp := doRequest(t, app, "DELETE", "/users/1", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	result := decodeBody(t, resp)
	if result["message"] != "User deleted successfully" {
		t.Errorf("Unexpected message: %v", result["message"])
	}

	resp = doRequest(t, app, "DELETE", "/users/1", nil)
	if resp.StatusCode != 404 {
		t.Fatalf("Expected 404 on second delete, got %d", resp.StatusCode)
	}
}

func TestListUsers(t *testing.T) {
	app, db := setupTestApp(t)
	db.Create(&models.User{Name: "Ana", Email: "ana@x.com"})
	db.Create(&models.User{Name: "Bob", Email: "bob@x.com"})

	resp := doRequest(t, app, "GET", "/users", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var users []map[string]interface{}
	decodeInto(t, resp, &users)
	if len(users) != 2 {
		t.Errorf("Expected 2 users, got %d", len(users))
	}
}
