package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"northern-forge-site/config"
	"northern-forge-site/internal/domain"
)

func TestSitePricingMatchesOfferings(t *testing.T) {
	site := Site()

	require.Len(t, site.Pricing, 3)
	for _, tier := range site.Pricing {
		assert.Contains(t, config.DefaultOfferings, tier.ServiceID, tier.Name)
	}
	assert.True(t, site.Pricing[1].Featured)
	assert.Equal(t, "Hive-Mind Waitlist", site.Pricing[2].ServiceID)
}

func TestSiteSections(t *testing.T) {
	site := Site()

	assert.Len(t, site.Problems, 3)
	assert.Len(t, site.Solutions, 4)
	assert.Len(t, site.Nav, 6)
	assert.Equal(t, "tel:+447405929684", site.Contact.PhoneURI)
}

func TestPostsHaveBodies(t *testing.T) {
	for _, teaser := range Posts() {
		assert.Empty(t, teaser.Markdown)

		post, err := Post(teaser.Slug)
		require.NoError(t, err, teaser.Slug)
		assert.NotEmpty(t, post.Markdown)
		assert.Equal(t, teaser.Title, post.Title)
	}
}

func TestPostUnknownSlug(t *testing.T) {
	_, err := Post("does-not-exist")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRenderPost(t *testing.T) {
	post, err := Post("ai-powered-automation")
	require.NoError(t, err)

	html, err := RenderPost(post)
	require.NoError(t, err)
	assert.Contains(t, html, "<h2>Where to start</h2>")
	assert.Contains(t, html, "<ol>")
}

func TestRenderPostStripsScript(t *testing.T) {
	html, err := RenderPost(&domain.BlogPost{
		Slug:     "x",
		Markdown: "hello <script>alert(1)</script>\n\n<a href=\"javascript:alert(1)\">x</a>",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script")
	assert.NotContains(t, html, "javascript:")
}
