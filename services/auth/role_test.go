package auth_test

import (
	"testing"

	"growlife/models"
	"growlife/services/auth"

	"github.com/stretchr/testify/assert"
)

func TestInferRole(t *testing.T) {
	cases := []struct {
		username string
		want     string
	}{
		{"admin", models.RoleAdmin},
		{"lena", models.RoleUser},
		{"lena@agent", models.RoleAgent},
		{"bob@agent.growlife", models.RoleAgent},
		{"administrator", models.RoleUser},
		{"agent", models.RoleUser},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, auth.InferRole(tc.username), "username %q", tc.username)
	}
}
