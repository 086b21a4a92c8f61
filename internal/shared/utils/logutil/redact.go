// Package logutil redacts credentials and personal data before they reach
// the logs.
package logutil

import "strings"

// TokenPrefix keeps the first n characters of a token, enough to correlate
// log lines without making the token reusable.
func TokenPrefix(token string, n int) string {
	if token == "" {
		return ""
	}
	if n <= 0 {
		return "..."
	}
	if len(token) <= n {
		return token
	}
	return token[:n] + "..."
}

// MaskEmail keeps the first letter of the local part and the domain:
// "promoter@uclouvain.be" becomes "p***@uclouvain.be".
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return "***"
	}
	if local == "" {
		return "***@" + domain
	}
	return local[:1] + "***@" + domain
}

// MaskEmails applies MaskEmail to every address.
func MaskEmails(emails []string) []string {
	masked := make([]string, len(emails))
	for i, e := range emails {
		masked[i] = MaskEmail(e)
	}
	return masked
}
