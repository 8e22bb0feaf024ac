package prthrottler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderComment(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{
			"all tokens",
			"@{author} has {openCount} open PRs, {allowedOpen} allowed ({mergedCount} merged)",
			"@octocat has 2 open PRs, 1 allowed (7 merged)",
		},
		{
			"unknown token renders empty",
			"sorry {author}{reason}",
			"sorry octocat",
		},
		{
			"repeated token",
			"{author} {author}",
			"octocat octocat",
		},
		{"no tokens", "please wait", "please wait"},
		{"empty template", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderComment(tt.tmpl, "octocat", 2, 1, 7)
			require.Equal(t, tt.want, got)
		})
	}
}
