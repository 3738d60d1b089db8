package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSuccessResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessResponse(c, gin.H{"status": "ok"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"code":200,"extras":{"status":"ok"}}`, w.Body.String())
}

func TestErrorFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "api error", err: ErrSessionNotFound, wantCode: http.StatusNotFound, wantMsg: "session not found"},
		{name: "wrapped api error", err: fmt.Errorf("lookup: %w", ErrSessionNotFound), wantCode: http.StatusNotFound, wantMsg: "session not found"},
		{name: "plain error", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantMsg: "boom"},
	}

	gin.SetMode(gin.TestMode)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ErrorFromError(c, http.StatusInternalServerError, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"success":false,"code":%d,"extras":{"message":%q}}`, tt.wantCode, tt.wantMsg), w.Body.String())
		})
	}
}
