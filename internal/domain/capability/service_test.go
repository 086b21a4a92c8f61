package capability

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repoaccess/internal/domain/access"
	vo "repoaccess/internal/domain/access/valueobjects"
	"repoaccess/internal/infrastructure/digest"
	"repoaccess/internal/shared/logger"
)

const (
	baseURL    = "https://repo.example.org/server"
	pathPrefix = "/api/core/bitstreams"
	promoter   = "promoter@uclouvain.be"
)

func newService(t *testing.T, secret string) *Service {
	t.Helper()
	h, err := digest.New("MD5", secret)
	require.NoError(t, err)
	return NewService(h, baseURL, pathPrefix, logger.NewNopLogger())
}

func TestService_Issue(t *testing.T) {
	svc := newService(t, "s3cr3t")
	h, err := digest.New("MD5", "s3cr3t")
	require.NoError(t, err)

	assert.Equal(t, h.HashHex(promoter), svc.Issue(promoter))
	assert.Equal(t, svc.Issue(promoter), svc.Issue(promoter))
	assert.NotEqual(t, svc.Issue(promoter), newService(t, "other").Issue(promoter))
}

func TestService_BuildURL(t *testing.T) {
	svc := newService(t, "s3cr3t")

	got := svc.BuildURL("6b1a5d5e-0d4c-4f7b-9d55-3c9d1b0b8f21", "abc123")
	assert.Equal(t,
		"https://repo.example.org/server/api/core/bitstreams/6b1a5d5e-0d4c-4f7b-9d55-3c9d1b0b8f21/content?hash=abc123",
		got)
}

func TestService_BuildURLs(t *testing.T) {
	svc := newService(t, "s3cr3t")

	item, err := access.NewItem("item-1", "col-1", vo.StageWorkflow)
	require.NoError(t, err)
	bundle, err := item.AddBundle("ORIGINAL")
	require.NoError(t, err)
	_, err = bundle.AddBitstream("bs-1", "thesis.pdf")
	require.NoError(t, err)
	_, err = bundle.AddBitstream("bs-2", "annex.zip")
	require.NoError(t, err)

	urls := svc.BuildURLs(bundle, promoter)
	require.Len(t, urls, 2)
	token := svc.Issue(promoter)
	assert.Equal(t, DownloadURL{BitstreamID: "bs-1", Name: "thesis.pdf", URL: svc.BuildURL("bs-1", token)}, urls[0])
	assert.Equal(t, "bs-2", urls[1].BitstreamID)

	assert.Nil(t, svc.BuildURLs(nil, promoter))
}

func TestService_Verify(t *testing.T) {
	svc := newService(t, "s3cr3t")
	token := svc.Issue(promoter)
	emails := []string{"manager@uclouvain.be", promoter}

	tests := []struct {
		name      string
		presented string
		emails    []string
		eligible  bool
		want      bool
	}{
		{name: "issued to an authorized email", presented: token, emails: emails, eligible: true, want: true},
		{name: "not in an eligible stage", presented: token, emails: emails, eligible: false, want: false},
		{name: "email no longer authorized", presented: token, emails: []string{"manager@uclouvain.be"}, eligible: true, want: false},
		{name: "no authorized emails", presented: token, emails: nil, eligible: true, want: false},
		{name: "empty token", presented: "", emails: emails, eligible: true, want: false},
		{name: "forged token", presented: "d41d8cd98f00b204e9800998ecf8427e", emails: emails, eligible: true, want: false},
		{name: "email case matters", presented: token, emails: []string{"Promoter@UCLouvain.be"}, eligible: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Verify(tt.presented, tt.emails, tt.eligible))
		})
	}
}

func TestService_VerifyWithoutSecret(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLoggerWithSlog(slog.New(slog.NewJSONHandler(&buf, nil)))

	h, err := digest.New("MD5", "")
	require.NoError(t, err)
	svc := NewService(h, baseURL, pathPrefix, log)

	assert.Contains(t, buf.String(), "secret is not configured")
	assert.False(t, svc.Verify(svc.Issue(promoter), []string{promoter}, true))
}

type plainHasher struct{}

func (plainHasher) HashHex(message string) string { return message }
func (plainHasher) HasSecret() bool               { return false }

func TestService_TrustFollowsHasher(t *testing.T) {
	svc := NewService(plainHasher{}, baseURL, pathPrefix, logger.NewNopLogger())

	assert.Equal(t, promoter, svc.Issue(promoter))
	assert.False(t, svc.Verify(promoter, []string{promoter}, true))
}
