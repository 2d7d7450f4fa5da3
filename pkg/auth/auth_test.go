package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenDerivation(t *testing.T) {
	for _, pw := range []string{"aiatlas2026", "secret", "한글비밀번호"} {
		sum := sha256.Sum256([]byte(pw))
		want := hex.EncodeToString(sum[:])[:32]
		require.Equal(t, want, Token(pw))
		require.Len(t, Token(pw), 32)
	}
}

func TestLogin(t *testing.T) {
	token, ok := Login("aiatlas2026", "aiatlas2026")
	require.True(t, ok)
	require.Equal(t, Token("aiatlas2026"), token)

	_, ok = Login("wrong", "aiatlas2026")
	require.False(t, ok)

	_, ok = Login("", "aiatlas2026")
	require.False(t, ok)
}

func TestVerify(t *testing.T) {
	token, _ := Login("aiatlas2026", "aiatlas2026")
	require.True(t, Verify(token, "aiatlas2026"))
	require.False(t, Verify(token, "otherpassword"))
	require.False(t, Verify("", "aiatlas2026"))
	require.False(t, Verify("deadbeef", "aiatlas2026"))
}

func TestBearerToken(t *testing.T) {
	r, _ := http.NewRequest(http.MethodGet, "/config", nil)
	require.Equal(t, "", BearerToken(r))

	r.Header.Set("Authorization", "Basic abc")
	require.Equal(t, "", BearerToken(r))

	r.Header.Set("Authorization", "Bearer tok123")
	require.Equal(t, "tok123", BearerToken(r))
}

func TestVerifyRequest(t *testing.T) {
	r, _ := http.NewRequest(http.MethodGet, "/config", nil)
	r.Header.Set("Authorization", "Bearer "+Token("pw"))
	require.True(t, VerifyRequest(r, "pw"))
	require.False(t, VerifyRequest(r, "pw2"))
}
