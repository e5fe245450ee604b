package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/leon37/StudentHub/internal/service"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrStudentNotFound, http.StatusNotFound},
		{service.ErrDuplicateEmail, http.StatusBadRequest},
		{service.ErrBadCredential, http.StatusUnauthorized},
		{fmt.Errorf("wrapped: %w", service.ErrIdentityNotFound), http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusOf(tt.err); got != tt.want {
			t.Fatalf("StatusOf(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestFromErrorHidesInternalCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	FromError(c, errors.New("dial tcp 10.0.0.5:3306: secret detail"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error != "Internal server error" {
		t.Fatalf("unexpected body %q", body.Error)
	}
}

func TestFromErrorUsesServiceMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	FromError(c, service.ErrStudentNotFound)

	if w.Code != http.StatusNotFound || w.Body.String() != `{"error":"Student not found"}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
