package models

import "time"

// IntegrationSecrets holds the platform credentials the backend publishes with.
// ID and CreatedAt are assigned by the backend and never sent back.
type IntegrationSecrets struct {
	ID                int64      `json:"id,omitempty"`
	XConsumerKey      string     `json:"x_consumer_key"`
	XConsumerSecret   string     `json:"x_consumer_secret"`
	XAccessToken      string     `json:"x_access_token"`
	XAccessSecret     string     `json:"x_access_secret"`
	XBearerToken      string     `json:"x_bearer_token"`
	InstagramUsername string     `json:"instagram_username"`
	InstagramPassword string     `json:"instagram_password"`
	BskyHandle        string     `json:"bsky_handle"`
	BskyAppPassword   string     `json:"bsky_app_password"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
}

type SecretField struct {
	Name      string
	Label     string
	Sensitive bool
}

// SecretFields lists the credential fields in form order.
var SecretFields = []SecretField{
	{Name: "x_consumer_key", Label: "Twitter Consumer Key", Sensitive: true},
	{Name: "x_consumer_secret", Label: "Twitter Consumer Secret", Sensitive: true},
	{Name: "x_access_token", Label: "Twitter Access Token", Sensitive: true},
	{Name: "x_access_secret", Label: "Twitter Access Secret", Sensitive: true},
	{Name: "x_bearer_token", Label: "Twitter Bearer Token", Sensitive: true},
	{Name: "instagram_username", Label: "Instagram Username"},
	{Name: "instagram_password", Label: "Instagram Password", Sensitive: true},
	{Name: "bsky_handle", Label: "Bluesky Handle"},
	{Name: "bsky_app_password", Label: "Bluesky App Password", Sensitive: true},
}

// Field returns a pointer to the credential named by its JSON key, or nil.
func (s *IntegrationSecrets) Field(name string) *string {
	switch name {
	case "x_consumer_key":
		return &s.XConsumerKey
	case "x_consumer_secret":
		return &s.XConsumerSecret
	case "x_access_token":
		return &s.XAccessToken
	case "x_access_secret":
		return &s.XAccessSecret
	case "x_bearer_token":
		return &s.XBearerToken
	case "instagram_username":
		return &s.InstagramUsername
	case "instagram_password":
		return &s.InstagramPassword
	case "bsky_handle":
		return &s.BskyHandle
	case "bsky_app_password":
		return &s.BskyAppPassword
	}
	return nil
}

// Credentials returns only the nine credential fields, as sent on create.
func (s *IntegrationSecrets) Credentials() map[string]string {
	out := make(map[string]string, len(SecretFields))
	for _, f := range SecretFields {
		out[f.Name] = *s.Field(f.Name)
	}
	return out
}
