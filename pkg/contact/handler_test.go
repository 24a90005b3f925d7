package contact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postContact(t *testing.T, handler *Handler, body map[string]string) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.SubmitMessage(w, req)
	return w
}

func validBody() map[string]string {
	return map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"subject": "Consulting inquiry",
		"message": "I'd like to discuss a project.",
	}
}

func TestSubmitMessage_MissingFieldSendsNothing(t *testing.T) {
	service, notifySender, ackSender := setupServiceTest(t)
	handler := NewHandler(service)

	for _, missing := range []string{"name", "email", "subject", "message"} {
		body := validBody()
		delete(body, missing)

		w := postContact(t, handler, body)

		assert.Equal(t, http.StatusBadRequest, w.Code, "missing %s", missing)
		var errResponse struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&errResponse))
		assert.Equal(t, "Missing required fields", errResponse.Error)
	}

	// No send attempts for invalid submissions.
	assert.Zero(t, notifySender.Calls)
	assert.Zero(t, ackSender.Calls)
}

func TestSubmitMessage_InvalidBody(t *testing.T) {
	service, _, _ := setupServiceTest(t)
	handler := NewHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	handler.SubmitMessage(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitMessage_Success(t *testing.T) {
	service, notifySender, ackSender := setupServiceTest(t)
	handler := NewHandler(service)

	w := postContact(t, handler, validBody())

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Success          bool   `json:"success"`
		Message          string `json:"message"`
		ConfirmationSent bool   `json:"confirmationSent"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Equal(t, "Email sent successfully", response.Message)
	assert.True(t, response.ConfirmationSent)
	assert.Len(t, notifySender.Sent, 1)
	assert.Len(t, ackSender.Sent, 1)
}

func TestSubmitMessage_DeliveryFailure(t *testing.T) {
	service, notifySender, _ := setupServiceTest(t)
	handler := NewHandler(service)
	notifySender.Err = fmt.Errorf("smtp down")

	w := postContact(t, handler, validBody())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var errResponse struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResponse))
	assert.Equal(t, "Failed to send message", errResponse.Error)
	assert.Contains(t, errResponse.Details, "smtp down")
}
