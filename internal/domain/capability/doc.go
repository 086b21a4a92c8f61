// Package capability issues and checks the hash tokens carried by
// reviewer download links.
//
// A token is the hex digest of the shared secret followed by a reviewer's
// email address. It is deterministic: the same reviewer always receives the
// same token, tokens never expire and cannot be revoked short of rotating
// the secret. Anyone who knows an authorized email and the secret can mint
// a valid token, and the digest is a plain secret-prefix construction, not
// an HMAC. Treat links as bearer credentials.
//
// Verification fails closed: without a configured secret no token is ever
// accepted.
package capability
