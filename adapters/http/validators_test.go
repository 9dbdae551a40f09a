package http

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedRequest struct {
	LinkType string `binding:"required,link_type"`
	Theme    string `binding:"omitempty,theme"`
}

func TestRegisterValidators(t *testing.T) {
	require.NotPanics(t, RegisterValidators)
	require.NotPanics(t, RegisterValidators)

	assert.NoError(t, binding.Validator.ValidateStruct(taggedRequest{LinkType: "website", Theme: "golden"}))
	assert.NoError(t, binding.Validator.ValidateStruct(taggedRequest{LinkType: "custom"}))
	assert.Error(t, binding.Validator.ValidateStruct(taggedRequest{LinkType: "myspace"}))
	assert.Error(t, binding.Validator.ValidateStruct(taggedRequest{LinkType: "mail", Theme: "neon"}))
}
