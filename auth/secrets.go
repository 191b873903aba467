package auth

import "crypto/subtle"

// Secret is the shared credential guarding the HTTP surface. It also signs
// issued tokens.
type Secret []byte

// Enabled reports whether a secret is configured.
func (s Secret) Enabled() bool { return len(s) > 0 }

func (s Secret) Matches(candidate string) bool {
	return subtle.ConstantTimeCompare(s, []byte(candidate)) == 1
}
