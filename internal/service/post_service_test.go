package service

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/maheshrc27/scheduling-console/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formPart struct {
	name     string
	filename string
	ctype    string
	value    string
}

func readParts(t *testing.T, r *http.Request) []formPart {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	mr := multipart.NewReader(r.Body, params["boundary"])
	var parts []formPart
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(p)
		require.NoError(t, err)
		parts = append(parts, formPart{
			name:     p.FormName(),
			filename: p.FileName(),
			ctype:    p.Header.Get("Content-Type"),
			value:    string(data),
		})
	}
	return parts
}

func partNames(parts []formPart) []string {
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, p.name)
	}
	return names
}

func fixedService(baseURL string) *postService {
	return &postService{
		baseURL: baseURL,
		client:  NewHTTPClient(time.Second),
		now:     func() time.Time { return time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC) },
	}
}

func TestPostList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/post", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`[
			{"id": 1, "text": "first", "schedule": "2025-06-01T10:00:00Z", "repeat": "daily", "immediate": false,
			 "time": "2025-05-01T08:00:00Z", "socials": [{"social": "x"}], "assets": []},
			{"id": 2, "text": "second", "schedule": null, "repeat": "none", "immediate": true,
			 "time": "2025-05-01T08:05:00Z", "socials": [{"social": "instagram"}],
			 "assets": [{"file_name": "a.png", "bucket": "media", "key": "k-a.png"}]}
		]`))
	}))
	defer srv.Close()

	posts, err := NewPostService(srv.URL, NewHTTPClient(time.Second)).List(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, int64(1), posts[0].ID)
	require.NotNil(t, posts[0].Schedule)
	assert.Nil(t, posts[1].Schedule)
	assert.Equal(t, "a.png", posts[1].Assets[0].FileName)
}

func TestPostListFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database is down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	posts, err := NewPostService(srv.URL, NewHTTPClient(time.Second)).List(context.Background())

	assert.Nil(t, posts)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "database is down", apiErr.Message)
	assert.Equal(t, "Failed to fetch posts (503): database is down", err.Error())
}

func TestPostRemove(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/post/42", r.URL.Path)
		w.Write([]byte(`{"message": "Post 42 deleted successfully!"}`))
	}))
	defer srv.Close()

	result, err := NewPostService(srv.URL, NewHTTPClient(time.Second)).Remove(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "Post 42 deleted successfully!", result["message"])
}

func TestPostRemoveFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Error deleting post."}`))
	}))
	defer srv.Close()

	_, err := NewPostService(srv.URL, NewHTTPClient(time.Second)).Remove(context.Background(), 42)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "id 42")
}

func TestSubmitImmediate(t *testing.T) {
	var parts []formPart
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/post", r.URL.Path)
		parts = readParts(t, r)
		w.Write([]byte(`{"message": "Post 9 created successfully!"}`))
	}))
	defer srv.Close()

	resp, err := fixedService(srv.URL).Submit(context.Background(), &transfer.ScheduleParameters{
		Text:      "Hello world",
		Repeat:    transfer.RepeatNone,
		Social:    []string{"x"},
		Immediate: true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"text", "immediate", "socials[]", "time"}, partNames(parts))
	assert.Equal(t, "Hello world", parts[0].value)
	assert.Equal(t, "true", parts[1].value)
	assert.Equal(t, "x", parts[2].value)
	assert.Equal(t, "2025-05-01T08:00:00.000Z", parts[3].value)

	var body map[string]string
	require.NoError(t, resp.JSON(&body))
	assert.Equal(t, "Post 9 created successfully!", body["message"])
}

func TestSubmitScheduledWithMedia(t *testing.T) {
	var parts []formPart
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts = readParts(t, r)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	at := time.Date(2025, 6, 1, 12, 30, 0, 0, time.FixedZone("CEST", 2*3600))
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 1, 2, 3}

	_, err := fixedService(srv.URL).Submit(context.Background(), &transfer.ScheduleParameters{
		Text:     "Launch day",
		DateTime: &at,
		Repeat:   transfer.RepeatWeekly,
		Social:   []string{"instagram", "bluesky"},
		Assets: []transfer.MediaFile{
			{Name: "banner.png", ContentType: "image/png", Data: png},
			{Name: "clip.mp4", Data: []byte("raw")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t,
		[]string{"text", "immediate", "schedule", "repeat", "socials[]", "socials[]", "media", "media", "time"},
		partNames(parts))
	assert.Equal(t, "false", parts[1].value)
	assert.Equal(t, "2025-06-01T10:30:00.000Z", parts[2].value)
	assert.Equal(t, "weekly", parts[3].value)
	assert.Equal(t, "instagram", parts[4].value)
	assert.Equal(t, "bluesky", parts[5].value)
	assert.Equal(t, "banner.png", parts[6].filename)
	assert.Equal(t, "image/png", parts[6].ctype)
	assert.Equal(t, string(png), parts[6].value)
	assert.Equal(t, "clip.mp4", parts[7].filename)
	assert.Equal(t, "application/octet-stream", parts[7].ctype)
}

func TestSubmitFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"socials": ["This field is required."]}`))
	}))
	defer srv.Close()

	resp, err := fixedService(srv.URL).Submit(context.Background(), &transfer.ScheduleParameters{
		Text: "x", Repeat: "none", Social: []string{"x"}, Immediate: true,
	})

	assert.Nil(t, resp)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "upload post", apiErr.Op)
	assert.Contains(t, err.Error(), "Failed to upload post (400)")
}
