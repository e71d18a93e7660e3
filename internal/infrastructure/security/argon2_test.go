package security

import (
	"strings"
	"testing"
)

func testParams() Argon2Params {
	return Argon2Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func TestArgon2Hasher_HashVerify(t *testing.T) {
	h := NewArgon2Hasher(testParams())
	enc, err := h.Hash("s3cret!")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(enc, "$argon2id$v=19$m=8192,t=1,p=1$") {
		t.Errorf("encoding: got %q", enc)
	}
	if !h.Verify("s3cret!", enc) {
		t.Error("correct password rejected")
	}
	if h.Verify("wrong", enc) {
		t.Error("wrong password accepted")
	}
}

func TestArgon2Hasher_VerifyAcrossParams(t *testing.T) {
	old := NewArgon2Hasher(Argon2Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16})
	enc, err := old.Hash("pw")
	if err != nil {
		t.Fatal(err)
	}
	if !NewArgon2Hasher(testParams()).Verify("pw", enc) {
		t.Error("hash from older params should still verify")
	}
}

func TestArgon2Hasher_Malformed(t *testing.T) {
	h := NewArgon2Hasher(testParams())
	for _, enc := range []string{"", "plain", "$argon2id$v=1$m=1,t=1,p=1$AA$AA", "$argon2id$v=19$garbage$AA$AA"} {
		if h.Verify("pw", enc) {
			t.Errorf("Verify(%q) should be false", enc)
		}
	}
}
