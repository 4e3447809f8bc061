package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-notebook/open-notebook-web/internal/sidebar"
)

func TestNewContext(t *testing.T) {
	ctx := NewContext("Test Page", "/notebooks")

	assert.Equal(t, "Test Page", ctx.PageTitle)
	assert.Equal(t, "/notebooks", ctx.CurrentPath)
	assert.NotNil(t, ctx.Breadcrumbs)
	assert.Empty(t, ctx.Breadcrumbs)
}

func TestContext_AddBreadcrumb_Chaining(t *testing.T) {
	ctx := NewContext("Test Page", "/settings/general").
		AddBreadcrumb("Manage", "/models", false).
		AddBreadcrumb("Settings", "/settings", true)

	require.Len(t, ctx.Breadcrumbs, 2)
	assert.Equal(t, "Manage", ctx.Breadcrumbs[0].Title)
	assert.False(t, ctx.Breadcrumbs[0].Active)
	assert.Equal(t, "/settings", ctx.Breadcrumbs[1].URL)
	assert.True(t, ctx.Breadcrumbs[1].Active)
}

func TestContext_IsActive(t *testing.T) {
	ctx := NewContext("Sources", "/sources/abc")

	assert.True(t, ctx.IsActive("/sources"))
	assert.False(t, ctx.IsActive("/notebooks"))
}

func TestForMenu(t *testing.T) {
	menu := sidebar.DefaultMenu()

	ctx := ForMenu(menu, "/transformations/12", "Open Notebook")
	assert.Equal(t, "Transformations", ctx.PageTitle)
	require.Len(t, ctx.Breadcrumbs, 2)
	assert.Equal(t, BreadcrumbItem{Title: "Manage", URL: "/models"}, ctx.Breadcrumbs[0])
	assert.Equal(t, BreadcrumbItem{Title: "Transformations", URL: "/transformations", Active: true}, ctx.Breadcrumbs[1])

	ctx = ForMenu(menu, "/elsewhere", "Open Notebook")
	assert.Equal(t, "Open Notebook", ctx.PageTitle)
	assert.Empty(t, ctx.Breadcrumbs)
}

func TestContext_WithSidebar(t *testing.T) {
	view := sidebar.Build(sidebar.DefaultMenu(), sidebar.Input{CurrentPath: "/podcasts"})
	ctx := NewContext("Podcasts", "/podcasts").WithSidebar(view)

	require.Len(t, ctx.Sidebar.ActiveItems(), 1)
	assert.Equal(t, "Podcasts", ctx.Sidebar.ActiveItems()[0].Name)
}
