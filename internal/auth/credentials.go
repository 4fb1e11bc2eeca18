package auth

import (
	"context"
	"fmt"
	"strings"
)

// CredentialStore checks a username/password pair.
// A mismatch is (false, nil); an error means the store itself failed.
type CredentialStore interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}

// StaticStore holds Argon2id hashes keyed by username.
type StaticStore struct {
	hashes map[string]string
}

func NewStaticStore(hashes map[string]string) *StaticStore {
	cp := make(map[string]string, len(hashes))
	for u, h := range hashes {
		cp[u] = h
	}
	return &StaticStore{hashes: cp}
}

// ParseUsers parses "user:hash,user2:hash2". Hashes contain '$' but never ':' or ','.
func ParseUsers(s string) (*StaticStore, error) {
	hashes := map[string]string{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		user, hash, ok := strings.Cut(pair, ":")
		if !ok || user == "" || hash == "" {
			return nil, fmt.Errorf("invalid user entry %q (want user:hash)", pair)
		}
		if _, dup := hashes[user]; dup {
			return nil, fmt.Errorf("duplicate user %q", user)
		}
		hashes[user] = hash
	}
	return NewStaticStore(hashes), nil
}

func (s *StaticStore) Verify(ctx context.Context, username, password string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	hash, ok := s.hashes[username]
	if !ok {
		return false, nil
	}
	return VerifyPassword(password, hash), nil
}
