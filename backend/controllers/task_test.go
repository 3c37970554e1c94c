package controllers_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListTasks(t *testing.T) {
	token := registerUser(t, "taskuser")

	resp := doRequest(t, "POST", "/tasks", map[string]interface{}{
		"title":       "Read chapter 3",
		"description": "Interfaces and embedding",
		"due_date":    "2026-09-15",
	}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var task map[string]interface{}
	decodeBody(t, resp, &task)
	assert.Equal(t, "Read chapter 3", task["title"])
	assert.Equal(t, false, task["completed"])

	resp = doRequest(t, "GET", "/tasks", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var tasks []map[string]interface{}
	decodeBody(t, resp, &tasks)
	assert.Len(t, tasks, 1)
}

func TestCreateTaskWithoutTitle(t *testing.T) {
	token := registerUser(t, "taskuser2")

	resp := doRequest(t, "POST", "/tasks", map[string]interface{}{"description": "no title"}, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateTaskPartial(t *testing.T) {
	token := registerUser(t, "taskuser3")

	resp := doRequest(t, "POST", "/tasks", map[string]interface{}{"title": "Original"}, token)
	var task map[string]interface{}
	decodeBody(t, resp, &task)
	id := task["id"].(float64)

	// Only the supplied field changes
	resp = doRequest(t, "PUT", fmt.Sprintf("/tasks/%.0f", id), map[string]interface{}{
		"completed": true,
	}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated map[string]interface{}
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Original", updated["title"])
	assert.Equal(t, true, updated["completed"])
}

func TestDeleteTask(t *testing.T) {
	token := registerUser(t, "taskuser4")

	resp := doRequest(t, "POST", "/tasks", map[string]interface{}{"title": "Ephemeral"}, token)
	var task map[string]interface{}
	decodeBody(t, resp, &task)
	id := task["id"].(float64)

	resp = doRequest(t, "DELETE", fmt.Sprintf("/tasks/%.0f", id), nil, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, "DELETE", fmt.Sprintf("/tasks/%.0f", id), nil, token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// Ownership: another user's rows look like they don't exist.
func TestCrossUserIsolation(t *testing.T) {
	ownerToken := registerUser(t, "owner")
	intruderToken := registerUser(t, "intruder")

	resp := doRequest(t, "POST", "/tasks", map[string]interface{}{"title": "Private"}, ownerToken)
	var task map[string]interface{}
	decodeBody(t, resp, &task)
	id := task["id"].(float64)

	resp = doRequest(t, "PUT", fmt.Sprintf("/tasks/%.0f", id), map[string]interface{}{"completed": true}, intruderToken)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, "DELETE", fmt.Sprintf("/tasks/%.0f", id), nil, intruderToken)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, "GET", "/tasks", nil, intruderToken)
	var tasks []map[string]interface{}
	decodeBody(t, resp, &tasks)
	assert.Empty(t, tasks)

	// Notes behave the same way
	resp = doRequest(t, "POST", "/notes", map[string]interface{}{
		"title":   "Secret",
		"content": "body",
	}, ownerToken)
	var note map[string]interface{}
	decodeBody(t, resp, &note)
	noteID := note["id"].(float64)

	resp = doRequest(t, "DELETE", fmt.Sprintf("/notes/%.0f", noteID), nil, intruderToken)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestNotesCRUD(t *testing.T) {
	token := registerUser(t, "noteuser")

	resp := doRequest(t, "POST", "/notes", map[string]interface{}{
		"title":      "Video notes",
		"content":    "goroutines are cheap",
		"source":     "youtube",
		"source_url": "https://youtube.com/watch?v=x",
	}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var note map[string]interface{}
	decodeBody(t, resp, &note)
	id := note["id"].(float64)

	resp = doRequest(t, "PUT", fmt.Sprintf("/notes/%.0f", id), map[string]interface{}{
		"content": "goroutines are very cheap",
	}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated map[string]interface{}
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Video notes", updated["title"])
	assert.Equal(t, "goroutines are very cheap", updated["content"])

	resp = doRequest(t, "GET", "/notes", nil, token)
	var notes []map[string]interface{}
	decodeBody(t, resp, &notes)
	assert.Len(t, notes, 1)

	resp = doRequest(t, "DELETE", fmt.Sprintf("/notes/%.0f", id), nil, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestScheduleAndPlaylists(t *testing.T) {
	token := registerUser(t, "planneruser")

	resp := doRequest(t, "POST", "/schedule", map[string]interface{}{
		"title": "Morning study",
		"date":  "2026-09-01",
	}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var entry map[string]interface{}
	decodeBody(t, resp, &entry)

	resp = doRequest(t, "GET", "/schedule", nil, token)
	var entries []map[string]interface{}
	decodeBody(t, resp, &entries)
	assert.Len(t, entries, 1)

	resp = doRequest(t, "DELETE", fmt.Sprintf("/schedule/%.0f", entry["id"].(float64)), nil, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, "POST", "/playlists", map[string]interface{}{
		"title":               "Go talks",
		"youtube_playlist_id": "PL123",
	}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var playlist map[string]interface{}
	decodeBody(t, resp, &playlist)

	resp = doRequest(t, "GET", "/playlists", nil, token)
	var playlists []map[string]interface{}
	decodeBody(t, resp, &playlists)
	assert.Len(t, playlists, 1)

	resp = doRequest(t, "DELETE", fmt.Sprintf("/playlists/%.0f", playlist["id"].(float64)), nil, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
