package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifyhub/apprise-node/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestResolveParams(t *testing.T) {
	node := domain.RawParams{
		Title: ptr("T"),
		Body:  ptr("B"),
		Type:  ptr("warning"),
		URLs:  ptr("url1,url2"),
	}

	t.Run("node parameters only", func(t *testing.T) {
		p, err := domain.ResolveParams(node, domain.Item{})
		require.NoError(t, err)
		assert.Equal(t, domain.Params{
			Title: "T",
			Body:  "B",
			Type:  domain.NotifyWarning,
			URLs:  "url1,url2",
		}, p)
	})

	t.Run("defaults applied", func(t *testing.T) {
		p, err := domain.ResolveParams(domain.RawParams{URLs: ptr("mailto://x")}, domain.Item{})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultBody, p.Body)
		assert.Equal(t, domain.NotifyInfo, p.Type)
		assert.Empty(t, p.Title)
		assert.False(t, p.UseKey)
	})

	t.Run("item fields override node parameters", func(t *testing.T) {
		item := domain.Item{JSON: map[string]any{
			domain.OverridesKey: map[string]any{
				"title":  "from item",
				"type":   "failure",
				"useKey": true,
				"key":    "abc",
				"tag":    "home",
			},
		}}
		p, err := domain.ResolveParams(node, item)
		require.NoError(t, err)
		assert.Equal(t, "from item", p.Title)
		assert.Equal(t, "B", p.Body)
		assert.Equal(t, domain.NotifyFailure, p.Type)
		assert.True(t, p.UseKey)
		assert.Equal(t, "abc", p.Key)
		assert.Equal(t, "home", p.Tag)
	})

	t.Run("tag dropped without key", func(t *testing.T) {
		raw := node
		raw.Tag = ptr("home")
		p, err := domain.ResolveParams(raw, domain.Item{})
		require.NoError(t, err)
		assert.Empty(t, p.Tag)
	})

	t.Run("invalid type", func(t *testing.T) {
		raw := node
		raw.Type = ptr("urgent")
		_, err := domain.ResolveParams(raw, domain.Item{})
		assert.ErrorIs(t, err, domain.ErrInvalidType)
	})

	t.Run("type is case insensitive", func(t *testing.T) {
		raw := node
		raw.Type = ptr(" Success ")
		p, err := domain.ResolveParams(raw, domain.Item{})
		require.NoError(t, err)
		assert.Equal(t, domain.NotifySuccess, p.Type)
	})

	t.Run("missing key", func(t *testing.T) {
		raw := node
		raw.UseKey = ptr(true)
		_, err := domain.ResolveParams(raw, domain.Item{})
		assert.ErrorIs(t, err, domain.ErrMissingKey)
	})

	t.Run("missing urls", func(t *testing.T) {
		raw := node
		raw.URLs = nil
		_, err := domain.ResolveParams(raw, domain.Item{})
		assert.ErrorIs(t, err, domain.ErrMissingURLs)
	})

	t.Run("wrongly typed item field", func(t *testing.T) {
		override := func(m map[string]any) domain.Item {
			return domain.Item{JSON: map[string]any{domain.OverridesKey: m}}
		}

		_, err := domain.ResolveParams(node, override(map[string]any{"title": 42.0}))
		assert.ErrorIs(t, err, domain.ErrInvalidParameter)

		_, err = domain.ResolveParams(node, override(map[string]any{"useKey": "yes"}))
		assert.ErrorIs(t, err, domain.ErrInvalidParameter)

		_, err = domain.ResolveParams(node, domain.Item{JSON: map[string]any{domain.OverridesKey: "abc"}})
		assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	})

	t.Run("top-level item fields are ignored", func(t *testing.T) {
		item := domain.Item{JSON: map[string]any{"type": "push", "title": 42.0, "useKey": true}}
		p, err := domain.ResolveParams(node, item)
		require.NoError(t, err)
		assert.Equal(t, domain.NotifyWarning, p.Type)
		assert.Equal(t, "T", p.Title)
		assert.False(t, p.UseKey)
	})
}

func TestWithItemIndex(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, domain.WithItemIndex(nil, 3))
	})

	t.Run("wraps a plain error", func(t *testing.T) {
		base := errors.New("boom")
		err := domain.WithItemIndex(base, 2)

		idx, ok := domain.ItemIndex(err)
		require.True(t, ok)
		assert.Equal(t, 2, idx)
		assert.ErrorIs(t, err, base)
		assert.Equal(t, "item 2: boom", err.Error())
	})

	t.Run("merges into an existing item error", func(t *testing.T) {
		first := domain.WithItemIndex(errors.New("boom"), 1)
		wrapped := errors.Join(errors.New("outer"), first)

		got := domain.WithItemIndex(wrapped, 7)
		assert.Same(t, wrapped, got)

		var ie *domain.ItemError
		require.ErrorAs(t, got, &ie)
		idx, ok := ie.ItemIndex()
		require.True(t, ok)
		assert.Equal(t, 7, idx)
	})

	t.Run("untagged item error", func(t *testing.T) {
		err := &domain.ItemError{Err: errors.New("boom")}
		_, ok := domain.ItemIndex(err)
		assert.False(t, ok)
		assert.Equal(t, "boom", err.Error())
	})

	t.Run("plain error has no index", func(t *testing.T) {
		_, ok := domain.ItemIndex(errors.New("boom"))
		assert.False(t, ok)
	})
}

func TestTagItemIndex(t *testing.T) {
	assert.NoError(t, domain.TagItemIndex(nil, 1))

	shared := domain.WithItemIndex(errors.New("relay rejected"), 5)
	first := domain.TagItemIndex(shared, 0)
	second := domain.TagItemIndex(shared, 2)

	idx, _ := domain.ItemIndex(first)
	assert.Equal(t, 0, idx)
	idx, _ = domain.ItemIndex(second)
	assert.Equal(t, 2, idx)
	idx, _ = domain.ItemIndex(shared)
	assert.Equal(t, 5, idx)
	assert.Equal(t, "item 0: relay rejected", first.Error())
}

func TestParsePolicy(t *testing.T) {
	p, err := domain.ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyFailFast, p)

	p, err = domain.ParsePolicy("collect_errors")
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyCollectErrors, p)

	_, err = domain.ParsePolicy("retry")
	assert.ErrorIs(t, err, domain.ErrInvalidPolicy)

	assert.Equal(t, domain.PolicyCollectErrors, domain.PolicyFromContinueOnFail(true))
	assert.Equal(t, domain.PolicyFailFast, domain.PolicyFromContinueOnFail(false))
}

func TestCredential_BaseURL(t *testing.T) {
	assert.Equal(t, "https://apprise.org", domain.Credential{Domain: "https://apprise.org/"}.BaseURL())
	assert.ErrorIs(t, domain.Credential{Domain: "  "}.Validate(), domain.ErrEmptyDomain)
	assert.NoError(t, domain.Credential{Domain: domain.DefaultDomain}.Validate())
}
