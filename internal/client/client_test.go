package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pooja2309/portfolio/internal/contact"
)

var input = contact.Input{
	Name:    "Alice",
	Email:   "alice@example.com",
	Subject: "Hello",
	Message: "Let's talk.",
}

func TestCreateSubmission_Success(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/contact", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got contact.Input
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, input, got)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Thank you, I will get back to you soon!","id":"abc","createdAt":"2025-08-02T09:30:00Z"}`))
	}))
	defer srv.Close()

	ack, err := New(srv.URL+"/", nil).CreateSubmission(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "Thank you, I will get back to you soon!", ack.Message)
	assert.Equal(t, "abc", ack.ID)
	assert.Equal(t, time.Date(2025, 8, 2, 9, 30, 0, 0, time.UTC), ack.CreatedAt)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCreateSubmission_ValidationFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"validation_failed","fields":{"email":"Please enter a valid email address"}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).CreateSubmission(context.Background(), input)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Equal(t, "Please enter a valid email address", verr.Fields["email"])
}

func TestCreateSubmission_ServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal_error"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).CreateSubmission(context.Background(), input)

	var serr *StatusError
	require.True(t, errors.As(err, &serr), "got %v", err)
	assert.Equal(t, http.StatusInternalServerError, serr.StatusCode)
	assert.Equal(t, "internal_error", serr.Code)
	assert.Equal(t, int32(1), calls.Load(), "no automatic retry")
}

func TestCreateSubmission_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).CreateSubmission(context.Background(), input)

	var serr *StatusError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, http.StatusBadGateway, serr.StatusCode)
	assert.Empty(t, serr.Code)
}

func TestCreateSubmission_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url, nil).CreateSubmission(context.Background(), input)
	require.Error(t, err)

	var serr *StatusError
	assert.False(t, errors.As(err, &serr))
}

func TestCreateSubmission_MissingMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).CreateSubmission(context.Background(), input)
	assert.ErrorContains(t, err, "no message")
}

func TestCreateSubmission_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL, nil).CreateSubmission(ctx, input)
	assert.ErrorIs(t, err, context.Canceled)
}
