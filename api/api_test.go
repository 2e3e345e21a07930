package api

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestLoad(t *testing.T) {
	doc, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Little Lemon API", doc.Info.Title)
	for _, path := range []string{
		"/auth/users", "/auth/token/login", "/category", "/menu-items", "/menu-items/{menuItemId}",
		"/groups/{group}/users", "/groups/{group}/users/{userId}", "/cart/menu-items",
		"/orders", "/orders/{orderId}",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestRegister(t *testing.T) {
	doc, err := Load(context.Background())
	require.NoError(t, err)

	require.NoError(t, Register(doc))
	require.NoError(t, Register(doc))

	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var served map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &served))
	assert.Equal(t, "3.0.3", served["openapi"])
}
