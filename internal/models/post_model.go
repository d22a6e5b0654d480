package models

import "time"

type ScheduledPost struct {
	ID        int64        `json:"id"`
	Text      string       `json:"text"`
	Schedule  *time.Time   `json:"schedule"`
	Socials   []PostSocial `json:"socials"`
	Assets    []PostAsset  `json:"assets"`
	Repeat    string       `json:"repeat"`
	Immediate bool         `json:"immediate"`
	Time      time.Time    `json:"time"`
}

type PostSocial struct {
	Social string `json:"social"`
}

// PostAsset points at a media object stored by the backend.
type PostAsset struct {
	FileName string `json:"file_name"`
	Bucket   string `json:"bucket"`
	Key      string `json:"key"`
}

func (p *ScheduledPost) SocialNames() []string {
	names := make([]string, 0, len(p.Socials))
	for _, s := range p.Socials {
		names = append(names, s.Social)
	}
	return names
}
