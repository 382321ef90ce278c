package feed

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"createscale/models"
)

// pagedFixture serves three one-profile pages per profession.
func pagedFixture(calls *[]string) PageFunc {
	return func(ctx context.Context, profession string, page int) (*models.FeedPage, error) {
		*calls = append(*calls, fmt.Sprintf("%s/%d", profession, page))
		return &models.FeedPage{
			Results: []models.FeedProfile{{
				UserID:     int64(page),
				Username:   fmt.Sprintf("%s-user-%d", profession, page),
				Profession: profession,
			}},
			Page:    page,
			HasNext: page < 3,
			Count:   3,
		}, nil
	}
}

func TestPager_AppendsOnLoadMore(t *testing.T) {
	var calls []string
	pager := NewPager(pagedFixture(&calls))
	ctx := context.Background()

	require.NoError(t, pager.Reset(ctx, ""))
	require.NoError(t, pager.LoadMore(ctx))
	require.NoError(t, pager.LoadMore(ctx))

	profiles := pager.Profiles()
	require.Len(t, profiles, 3)
	assert.Equal(t, "-user-1", profiles[0].Username)
	assert.Equal(t, "-user-3", profiles[2].Username)
	assert.False(t, pager.HasNext())

	// Exhausted: further loads are no-ops, not requests.
	require.NoError(t, pager.LoadMore(ctx))
	assert.Len(t, calls, 3)
}

func TestPager_ResetReplacesOnFilterChange(t *testing.T) {
	var calls []string
	pager := NewPager(pagedFixture(&calls))
	ctx := context.Background()

	require.NoError(t, pager.Reset(ctx, ""))
	require.NoError(t, pager.LoadMore(ctx))
	require.Len(t, pager.Profiles(), 2)

	require.NoError(t, pager.Reset(ctx, "Guitarist"))

	profiles := pager.Profiles()
	require.Len(t, profiles, 1)
	assert.Equal(t, "Guitarist-user-1", profiles[0].Username)
	assert.Equal(t, "Guitarist", pager.Profession())
}

func TestPager_LoadMoreBeforeResetIsNoop(t *testing.T) {
	var calls []string
	pager := NewPager(pagedFixture(&calls))

	require.NoError(t, pager.LoadMore(context.Background()))
	assert.Empty(t, calls)
	assert.Empty(t, pager.Profiles())
}

func TestPager_StaleCompletionDiscarded(t *testing.T) {
	// A slow page-2 load completes after the user switched filters; its
	// results must not leak into the new list.
	release := make(chan struct{})
	started := make(chan struct{})
	fetch := func(ctx context.Context, profession string, page int) (*models.FeedPage, error) {
		if profession == "" && page == 2 {
			close(started)
			<-release
		}
		return &models.FeedPage{
			Results: []models.FeedProfile{{Username: fmt.Sprintf("%s-user-%d", profession, page)}},
			Page:    page,
			HasNext: true,
		}, nil
	}
	pager := NewPager(fetch)
	ctx := context.Background()

	require.NoError(t, pager.Reset(ctx, ""))

	done := make(chan error, 1)
	go func() { done <- pager.LoadMore(ctx) }()
	<-started

	require.NoError(t, pager.Reset(ctx, "Juggler"))
	close(release)
	require.NoError(t, <-done)

	profiles := pager.Profiles()
	require.Len(t, profiles, 1)
	assert.Equal(t, "Juggler-user-1", profiles[0].Username)
}
