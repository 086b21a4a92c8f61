package capability

import (
	"crypto/subtle"
	"fmt"
	"net/url"

	"repoaccess/internal/domain/access"
	"repoaccess/internal/shared/logger"
)

// Hasher produces the hex digest of secret || message.
type Hasher interface {
	HashHex(message string) string
	HasSecret() bool
}

// DownloadURL is a tokenized link to a single bitstream.
type DownloadURL struct {
	BitstreamID string
	Name        string
	URL         string
}

type Service struct {
	hasher     Hasher
	hasSecret  bool
	baseURL    string
	pathPrefix string
}

// NewService builds the token service. Tokens are only trusted when the
// hasher is keyed.
func NewService(hasher Hasher, baseURL, pathPrefix string, log logger.Interface) *Service {
	hasSecret := hasher.HasSecret()
	if !hasSecret {
		log.Warnw("download token secret is not configured, every token will be rejected")
	}
	return &Service{
		hasher:     hasher,
		hasSecret:  hasSecret,
		baseURL:    baseURL,
		pathPrefix: pathPrefix,
	}
}

// Issue returns the token for email.
func (s *Service) Issue(email string) string {
	return s.hasher.HashHex(email)
}

// BuildURL returns <baseURL><pathPrefix>/<objectID>/content?hash=<token>.
func (s *Service) BuildURL(objectID, token string) string {
	return fmt.Sprintf("%s%s/%s/content?hash=%s",
		s.baseURL, s.pathPrefix, url.PathEscape(objectID), url.QueryEscape(token))
}

// BuildURLs issues one link per bitstream of the bundle, in bundle order.
func (s *Service) BuildURLs(bundle *access.Bundle, email string) []DownloadURL {
	if bundle == nil {
		return nil
	}

	token := s.Issue(email)
	bitstreams := bundle.Bitstreams()
	urls := make([]DownloadURL, 0, len(bitstreams))
	for _, bs := range bitstreams {
		urls = append(urls, DownloadURL{
			BitstreamID: bs.ID(),
			Name:        bs.Name(),
			URL:         s.BuildURL(bs.ID(), token),
		})
	}
	return urls
}

// Verify reports whether presented was issued to one of emails. It is
// always false without a secret, without a token, without emails or when
// the object is not in a stage that allows token access.
func (s *Service) Verify(presented string, emails []string, inEligibleStage bool) bool {
	if !s.hasSecret || presented == "" || len(emails) == 0 || !inEligibleStage {
		return false
	}

	match := 0
	for _, email := range emails {
		match |= subtle.ConstantTimeCompare([]byte(s.Issue(email)), []byte(presented))
	}
	return match == 1
}
