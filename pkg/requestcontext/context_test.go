package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserAndMembership(t *testing.T) {
	ctx := context.Background()
	assert.False(t, IsAuthenticated(ctx))
	assert.False(t, IsMember(ctx, "552100554"))

	id := uuid.New()
	ctx = WithUser(ctx, id, []string{"552100554"})
	assert.Equal(t, id, UserID(ctx))
	assert.True(t, IsAuthenticated(ctx))
	assert.True(t, IsMember(ctx, "552100554"))
	assert.False(t, IsMember(ctx, "130025265"))
}

func TestNowPrefersInjectedTime(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, fixed, Now(WithTime(context.Background(), fixed)))
	assert.WithinDuration(t, time.Now(), Now(context.Background()), time.Second)
}
