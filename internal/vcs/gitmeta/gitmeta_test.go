package gitmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectFromRemoteURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"https", "https://github.com/acme/widgets.git", "acme/widgets"},
		{"https no suffix", "https://github.com/acme/widgets", "acme/widgets"},
		{"ssh", "git@github.com:acme/widgets.git", "acme/widgets"},
		{"ssh nested group", "git@gitlab.example.com:group/sub/widgets.git", "group/sub/widgets"},
		{"https with port", "https://gitlab.example.com:8443/acme/widgets.git", "acme/widgets"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ProjectFromRemoteURL(tc.url)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProjectFromRemoteURL_Invalid(t *testing.T) {
	for _, url := range []string{"", "plainstring", "https://hostonly"} {
		_, err := ProjectFromRemoteURL(url)
		assert.Error(t, err, url)
	}
}
