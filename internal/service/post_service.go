package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/maheshrc27/scheduling-console/internal/models"
	"github.com/maheshrc27/scheduling-console/internal/transfer"
)

type PostService interface {
	List(ctx context.Context) ([]*models.ScheduledPost, error)
	Remove(ctx context.Context, postID int64) (map[string]any, error)
	Submit(ctx context.Context, params *transfer.ScheduleParameters) (*SubmitResponse, error)
}

// SubmitResponse is the backend's answer to a successful submission. The body
// is kept raw so callers may decode it when the backend sends JSON.
type SubmitResponse struct {
	StatusCode int
	Body       []byte
}

func (r *SubmitResponse) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

type postService struct {
	baseURL string
	client  *http.Client
	now     func() time.Time
}

func NewPostService(baseURL string, client *http.Client) PostService {
	return &postService{baseURL: baseURL, client: client, now: time.Now}
}

func (s *postService) List(ctx context.Context) ([]*models.ScheduledPost, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/post", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return nil, newAPIError("fetch posts", resp)
	}

	var posts []*models.ScheduledPost
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}

	return posts, nil
}

func (s *postService) Remove(ctx context.Context, postID int64) (map[string]any, error) {
	endpoint := fmt.Sprintf("%s/api/post/%d", s.baseURL, postID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("failed to delete post %d: %w", postID, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return nil, newAPIError(fmt.Sprintf("delete item with id %d", postID), resp)
	}

	result := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil && err != io.EOF {
		slog.Info(err.Error())
		return nil, fmt.Errorf("failed to decode delete response: %w", err)
	}

	return result, nil
}

func (s *postService) Submit(ctx context.Context, params *transfer.ScheduleParameters) (*SubmitResponse, error) {
	if params == nil {
		return nil, fmt.Errorf("schedule parameters are nil")
	}

	body, contentType, err := s.buildForm(params)
	if err != nil {
		return nil, fmt.Errorf("failed to build post form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/post", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("failed to upload post: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return nil, newAPIError("upload post", resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload response: %w", err)
	}

	return &SubmitResponse{StatusCode: resp.StatusCode, Body: raw}, nil
}

// buildForm writes the multipart fields in the order the backend reads them:
// text, immediate, schedule+repeat (scheduled only), socials[], media, time.
func (s *postService) buildForm(params *transfer.ScheduleParameters) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := [][2]string{
		{"text", params.Text},
		{"immediate", strconv.FormatBool(params.Immediate)},
	}
	if !params.Immediate && params.DateTime != nil {
		fields = append(fields,
			[2]string{"schedule", isoTimestamp(*params.DateTime)},
			[2]string{"repeat", params.Repeat},
		)
	}
	for _, platform := range params.Social {
		fields = append(fields, [2]string{"socials[]", platform})
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}

	for _, file := range params.Assets {
		part, err := w.CreatePart(mediaHeader(file))
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.WriteField("time", isoTimestamp(s.now())); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func mediaHeader(file transfer.MediaFile) textproto.MIMEHeader {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="media"; filename="%s"`, quoteEscaper.Replace(file.Name)))
	h.Set("Content-Type", contentType)
	return h
}
