package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-api/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatusCode(t *testing.T) {
	h := &HTTPHelper{}
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{models.ErrorValidation{Message: "bad"}, http.StatusBadRequest},
		{models.ErrorInvalidID{Value: "x"}, http.StatusBadRequest},
		{models.ErrorConflict{Message: "dup"}, http.StatusBadRequest},
		{models.ErrorMissingToken{}, http.StatusUnauthorized},
		{models.ErrorUnauthorized{Message: "no"}, http.StatusUnauthorized},
		{models.ErrorInvalidToken{}, http.StatusForbidden},
		{models.ErrorForbiddenRole{Required: models.RoleAdmin}, http.StatusForbidden},
		{models.ErrorNotFound{Resource: "education"}, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", models.ErrorNotFound{Resource: "article"}), http.StatusNotFound},
		{models.ErrorNoAdminUser{}, http.StatusNotFound},
		{models.ErrorTooManyRequests{}, http.StatusTooManyRequests},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, h.GetStatusCode(tc.err), "%v", tc.err)
	}
}

func TestSendError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, hook := test.NewNullLogger()
	h := NewHTTPHelper(log)

	send := func(err error) (*httptest.ResponseRecorder, map[string]interface{}) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/x", nil)
		h.SendError(c, err)
		body := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w, body
	}

	w, body := send(models.ErrorValidation{Fields: map[string]string{"title": "title is a required field"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "title is a required field", body["error"])
	assert.Equal(t, map[string]interface{}{"title": "title is a required field"}, body["fields"])

	w, body = send(errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, textInternalError, body["error"])
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "/api/x", hook.LastEntry().Data["path"])
}
