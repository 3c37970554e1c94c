package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	resp := doRequest(t, "POST", "/auth/register", map[string]string{
		"username": "newuser",
		"email":    "newuser@example.com",
		"password": "password123",
		"name":     "New User",
	}, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	decodeBody(t, resp, &result)
	assert.Equal(t, "newuser", result["username"])
	assert.Equal(t, "newuser@example.com", result["email"])
	assert.NotEmpty(t, result["id"])
	// The hash must never leave the server
	assert.NotContains(t, result, "password_hash")
}

func TestRegisterDuplicate(t *testing.T) {
	payload := map[string]string{
		"username": "dupuser",
		"email":    "dupuser@example.com",
		"password": "password123",
	}
	resp := doRequest(t, "POST", "/auth/register", payload, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, "POST", "/auth/register", payload, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Same email under a different username is rejected too
	resp = doRequest(t, "POST", "/auth/register", map[string]string{
		"username": "dupuser2",
		"email":    "dupuser@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	doRequest(t, "POST", "/auth/register", map[string]string{
		"username": "loginuser",
		"email":    "loginuser@example.com",
		"password": "password123",
	}, "")

	resp := doRequest(t, "POST", "/auth/login", map[string]string{
		"username": "loginuser",
		"password": "password123",
	}, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	decodeBody(t, resp, &result)
	assert.NotEmpty(t, result["access_token"])
	assert.Equal(t, "bearer", result["token_type"])

	// The issued token must be accepted by the resolver
	token := result["access_token"].(string)
	resp = doRequest(t, "GET", "/profile", nil, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var profile map[string]interface{}
	decodeBody(t, resp, &profile)
	assert.Equal(t, "loginuser", profile["username"])
}

func TestLoginWrongPassword(t *testing.T) {
	doRequest(t, "POST", "/auth/register", map[string]string{
		"username": "wrongpw",
		"email":    "wrongpw@example.com",
		"password": "password123",
	}, "")

	resp := doRequest(t, "POST", "/auth/login", map[string]string{
		"username": "wrongpw",
		"password": "not-the-password",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
}

func TestLoginUnknownUser(t *testing.T) {
	resp := doRequest(t, "POST", "/auth/login", map[string]string{
		"username": "nobody",
		"password": "password123",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	resp := doRequest(t, "GET", "/tasks", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
}

func TestProtectedRouteWithGarbageToken(t *testing.T) {
	resp := doRequest(t, "GET", "/tasks", nil, "not.a.token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateProfileName(t *testing.T) {
	token := registerUser(t, "renameuser")

	resp := doRequest(t, "PUT", "/profile", map[string]string{"name": "Renamed"}, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var profile map[string]interface{}
	decodeBody(t, resp, &profile)
	assert.Equal(t, "Renamed", profile["name"])
}

func TestDeleteAccount(t *testing.T) {
	token := registerUser(t, "doomeduser")

	resp := doRequest(t, "POST", "/tasks", map[string]interface{}{"title": "Orphan task"}, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, "DELETE", "/profile", nil, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The token resolves to a deleted user now
	resp = doRequest(t, "GET", "/tasks", nil, token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
