package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>  Example Task  </title></head><body></body></html>`))
	}))
	defer srv.Close()

	svc := NewPreviewService(5 * time.Second)
	title, err := svc.PageTitle(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Example Task", title)
}

func TestPageTitle_NoTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>nothing here</body></html>`))
	}))
	defer srv.Close()

	svc := NewPreviewService(5 * time.Second)
	_, err := svc.PageTitle(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestPageTitle_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := NewPreviewService(5 * time.Second)
	_, err := svc.PageTitle(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestPageTitle_TruncatesLongTitles(t *testing.T) {
	long := make([]byte, 0, 400)
	for i := 0; i < 400; i++ {
		long = append(long, 'a')
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>` + string(long) + `</title></head></html>`))
	}))
	defer srv.Close()

	svc := NewPreviewService(5 * time.Second)
	title, err := svc.PageTitle(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, title, maxTitleLen)
}
