package session_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"bitbucket.org/sotavant/wasa-chat-client/internal/session"
	"bitbucket.org/sotavant/wasa-chat-client/internal/session/mock"
)

func TestResolve(t *testing.T) {
	ctrl := gomock.NewController(t)

	testCases := []struct {
		name          string
		raw           string
		expectedToken string
		expectedOK    bool
	}{
		{name: "plain", raw: "abc.def", expectedToken: "abc.def", expectedOK: true},
		{name: "surrounding_whitespace", raw: "  abc.def\n", expectedToken: "abc.def", expectedOK: true},
		{name: "empty", raw: "", expectedToken: "", expectedOK: false},
		{name: "whitespace_only", raw: " \t\n", expectedToken: "", expectedOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := mock.NewMockSource(ctrl)
			src.EXPECT().Token().Return(tc.raw)

			token, ok := session.Resolve(src)
			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expectedToken, token)
		})
	}
}

func TestEnvSource(t *testing.T) {
	t.Setenv("TEST_ACCESS_TOKEN", " secret ")

	token, ok := session.Resolve(session.EnvSource{Key: "TEST_ACCESS_TOKEN"})
	assert.True(t, ok)
	assert.Equal(t, "secret", token)

	_, ok = session.Resolve(session.EnvSource{Key: "TEST_ACCESS_TOKEN_UNSET"})
	assert.False(t, ok)
}

func TestStaticSource(t *testing.T) {
	token, ok := session.Resolve(session.StaticSource("secret"))
	assert.True(t, ok)
	assert.Equal(t, "secret", token)
}
