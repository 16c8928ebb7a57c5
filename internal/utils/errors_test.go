package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeInvalidArgument, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeUnavailable, http.StatusServiceUnavailable},
		// every pipeline stage failure is a plain 500
		{CodeUploadFailed, http.StatusInternalServerError},
		{CodeSubmitFailed, http.StatusInternalServerError},
		{CodePollingError, http.StatusInternalServerError},
		{CodeTranscriptionFailed, http.StatusInternalServerError},
		{CodePersistFailed, http.StatusInternalServerError},
		{CodeTimeout, http.StatusInternalServerError},
		{CodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(E(tc.code, "op", "msg", nil)), string(tc.code))
	}

	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestAppErrorWrapping(t *testing.T) {
	inner := errors.New("connection reset")
	err := E(CodeUploadFailed, "TranscriptionService.Transcribe", "Failed to transcribe audio", inner)

	assert.True(t, IsCode(err, CodeUploadFailed))
	assert.False(t, IsCode(err, CodeSubmitFailed))
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "TranscriptionService.Transcribe")
	assert.Contains(t, err.Error(), "connection reset")
}
