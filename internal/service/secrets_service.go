package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/maheshrc27/scheduling-console/internal/models"
)

type SecretsService interface {
	Get(ctx context.Context) (*models.IntegrationSecrets, error)
	Create(ctx context.Context, secrets *models.IntegrationSecrets) error
	Delete(ctx context.Context, id string) error
}

type secretsService struct {
	baseURL string
	client  *http.Client
}

func NewSecretsService(baseURL string, client *http.Client) SecretsService {
	return &secretsService{baseURL: baseURL, client: client}
}

// Get returns nil without an error when the backend has no secrets yet
// or answers with any other non-2xx status.
func (s *secretsService) Get(ctx context.Context) (*models.IntegrationSecrets, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/secrets", nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("failed to fetch secrets: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return nil, nil
	}

	var secrets models.IntegrationSecrets
	if err := json.NewDecoder(resp.Body).Decode(&secrets); err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("failed to decode secrets: %w", err)
	}

	return &secrets, nil
}

func (s *secretsService) Create(ctx context.Context, secrets *models.IntegrationSecrets) error {
	body, err := json.Marshal(secrets.Credentials())
	if err != nil {
		return fmt.Errorf("failed to encode secrets: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/secrets", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return fmt.Errorf("failed to create secrets: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return newAPIError("create secrets", resp)
	}

	return nil
}

// Delete removes one record when id is set, otherwise every stored record.
func (s *secretsService) Delete(ctx context.Context, id string) error {
	endpoint := s.baseURL + "/api/secrets"
	if id != "" {
		endpoint += "?id=" + url.QueryEscape(id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return fmt.Errorf("failed to delete secrets: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return newAPIError("delete secrets", resp)
	}

	return nil
}
