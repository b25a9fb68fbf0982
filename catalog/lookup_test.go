package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCategories(t *testing.T) {
	c, _ := seeded(t)

	assert.Len(t, c.MatchCategories(""), 6)

	got := c.MatchCategories("kub")
	require.NotEmpty(t, got)
	assert.Equal(t, "category_k8s", got[0].ID)

	got = c.MatchCategories("sql")
	require.NotEmpty(t, got)
	assert.Equal(t, "category_mysql", got[0].ID)

	assert.Empty(t, c.MatchCategories("zzz"))
}

func TestResolveCategory(t *testing.T) {
	c, _ := seeded(t)

	tests := []struct {
		ref  string
		want string
	}{
		{"category_git", "category_git"},
		{"git", "category_git"},
		{"  NGINX ", "category_nginx"},
		{"dock", "category_docker"},
		{"kbnts", "category_k8s"},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			cat, err := c.ResolveCategory(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cat.ID)
		})
	}

	_, err := c.ResolveCategory("qqq")
	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))

	_, err = c.ResolveCategory("")
	assert.True(t, errors.As(err, &nf))
}
