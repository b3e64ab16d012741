package relay_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iankatengeza/energy-monitor-build/internal/adapter"
	"github.com/iankatengeza/energy-monitor-build/internal/mock"
	"github.com/iankatengeza/energy-monitor-build/internal/relay"
	"github.com/iankatengeza/energy-monitor-build/models"
)

func ptr(s string) *string {
	return &s
}

func newTestRelay(t *testing.T, opts relay.Options) (*relay.Relay, *mock.MockNotificationDisplay) {
	t.Helper()
	ctrl := gomock.NewController(t)
	display := mock.NewMockNotificationDisplay(ctrl)
	return relay.New(display, opts, nil), display
}

// ── Compose ───────────────────────────────────────────────────────────────────

func TestCompose_DefaultsAbsentFields(t *testing.T) {
	r, _ := newTestRelay(t, relay.Options{})

	req := r.Compose(models.InboundMessage{})

	assert.Equal(t, relay.DefaultTitle, req.Title)
	assert.Equal(t, relay.DefaultBody, req.Body)
	assert.Equal(t, relay.DefaultIconRef, req.IconRef)
	assert.Equal(t, relay.DefaultBadgeRef, req.BadgeRef)
	assert.NotEmpty(t, req.Tag)
	assert.Equal(t, []string{models.NotificationFieldTitle, models.NotificationFieldBody}, req.FallbackFields)
}

func TestCompose_BlankFieldsAreAbsent(t *testing.T) {
	r, _ := newTestRelay(t, relay.Options{})

	req := r.Compose(models.InboundMessage{
		NotificationTitle: ptr(""),
		NotificationBody:  ptr("  "),
	})

	assert.Equal(t, relay.DefaultTitle, req.Title)
	assert.Equal(t, relay.DefaultBody, req.Body)
	assert.Equal(t, []string{models.NotificationFieldTitle, models.NotificationFieldBody}, req.FallbackFields)
}

func TestCompose_PresentContentHasNoFallbacks(t *testing.T) {
	r, _ := newTestRelay(t, relay.Options{})

	req := r.Compose(models.InboundMessage{
		NotificationTitle: ptr("Peak"),
		NotificationBody:  ptr("Usage doubled"),
	})

	assert.Equal(t, "Peak", req.Title)
	assert.Equal(t, "Usage doubled", req.Body)
	assert.Empty(t, req.FallbackFields)
}

func TestCompose_IconAndBadgeIgnoreMessage(t *testing.T) {
	r, _ := newTestRelay(t, relay.Options{IconRef: "/icons/a.png", BadgeRef: "/icons/b.png"})

	req := r.Compose(models.InboundMessage{
		NotificationTitle: ptr("Peak"),
		Data:              map[string]string{"icon": "/evil.png"},
	})

	assert.Equal(t, "Peak", req.Title)
	assert.Equal(t, "/icons/a.png", req.IconRef)
	assert.Equal(t, "/icons/b.png", req.BadgeRef)
}

func TestCompose_CustomFallbacks(t *testing.T) {
	r, _ := newTestRelay(t, relay.Options{FallbackTitle: "Alert", FallbackBody: "Open the app"})

	req := r.Compose(models.InboundMessage{})
	assert.Equal(t, "Alert", req.Title)
	assert.Equal(t, "Open the app", req.Body)
}

// ── OnMessage ─────────────────────────────────────────────────────────────────

func TestOnMessage_AbsentTitleUsesFallback(t *testing.T) {
	r, display := newTestRelay(t, relay.Options{})
	ctx := context.Background()

	display.EXPECT().Show(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.NotificationRequest) error {
			assert.Equal(t, relay.DefaultTitle, req.Title)
			assert.Equal(t, "Check usage", req.Body)
			return nil
		},
	).Times(1)

	req, err := r.OnMessage(ctx, models.InboundMessage{NotificationBody: ptr("Check usage")})
	require.NoError(t, err)
	assert.Equal(t, relay.DefaultTitle, req.Title)
	assert.Equal(t, "Check usage", req.Body)
}

func TestOnMessage_DisplayFailureIsSurfaced(t *testing.T) {
	r, display := newTestRelay(t, relay.Options{})

	display.EXPECT().Show(gomock.Any(), gomock.Any()).
		Return(adapter.ErrHostUnavailable).
		Times(1)

	req, err := r.OnMessage(context.Background(), models.InboundMessage{NotificationTitle: ptr("Spike")})
	require.Error(t, err)
	assert.ErrorIs(t, err, relay.ErrNotificationDisplayUnavailable)
	assert.ErrorIs(t, err, adapter.ErrHostUnavailable)
	assert.Equal(t, "Spike", req.Title)
}

func TestOnMessage_AnyDisplayErrorIsUnavailable(t *testing.T) {
	r, display := newTestRelay(t, relay.Options{})

	display.EXPECT().Show(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	_, err := r.OnMessage(context.Background(), models.InboundMessage{})
	assert.ErrorIs(t, err, relay.ErrNotificationDisplayUnavailable)
}

// TestOnMessage_Concurrent verifies that N concurrent invocations issue
// exactly N independent display calls.
func TestOnMessage_Concurrent(t *testing.T) {
	const n = 64
	r, display := newTestRelay(t, relay.Options{})

	var (
		mu   sync.Mutex
		tags = make(map[string]struct{}, n)
	)
	display.EXPECT().Show(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.NotificationRequest) error {
			mu.Lock()
			tags[req.Tag] = struct{}{}
			mu.Unlock()
			return nil
		},
	).Times(n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body := "reading"
			if i%2 == 0 {
				body = ""
			}
			_, err := r.OnMessage(context.Background(), models.InboundMessage{NotificationBody: &body})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, tags, n)
}
