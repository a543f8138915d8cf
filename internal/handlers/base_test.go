package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"linknest/internal/services"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	return body
}

func TestRespondOK(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondOK(c, http.StatusOK, "done", gin.H{"x": 1})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	if body["message"] != "done" {
		t.Errorf("message = %v, want done", body["message"])
	}
	if _, ok := body["data"]; !ok {
		t.Error("data missing from success envelope")
	}
}

func TestRespondOKOmitsNilData(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondOK(c, http.StatusOK, "done", nil)

	body := decodeBody(t, w)
	if _, ok := body["data"]; ok {
		t.Error("data should be omitted when nil")
	}
}

func TestRespondPage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondPage(c, "", []int{1, 2, 3}, 2, 5)

	body := decodeBody(t, w)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	pg, ok := body["pagination"].(map[string]interface{})
	if !ok {
		t.Fatal("pagination missing from paged envelope")
	}
	if pg["page"] != float64(2) || pg["totalPages"] != float64(5) {
		t.Errorf("pagination = %v, want page 2 totalPages 5", pg)
	}
	data, ok := body["data"].([]interface{})
	if !ok || len(data) != 3 {
		t.Errorf("data = %v, want 3-element list", body["data"])
	}
}

func TestHandleErrorValidation(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleError(c, &services.ValidationError{Message: "bad input"})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if body["isFormError"] != true {
		t.Errorf("isFormError = %v, want true", body["isFormError"])
	}
	if body["error"] != "bad input" {
		t.Errorf("error = %v, want bad input", body["error"])
	}
}

func TestHandleErrorNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleError(c, services.ErrPostNotFound)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if _, ok := body["isFormError"]; ok {
		t.Error("isFormError should not be set for NotFound")
	}
}
