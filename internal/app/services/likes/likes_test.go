package likes_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/angristan/nebula-backend/internal/app/services/likes"
	"github.com/angristan/nebula-backend/internal/app/services/likes/mocks"
	"github.com/angristan/nebula-backend/internal/domain"
	"github.com/angristan/nebula-backend/internal/infra/repository/jsonfile"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

var song = domain.Track{
	VideoID:   "dQw4w9WgXcQ",
	Title:     "Never Gonna Give You Up",
	Artist:    "Rick Astley",
	Thumbnail: "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
}

func newFileService(t *testing.T) (*likes.LikesService, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "liked_songs.json")
	logger, _ := logtest.NewNullLogger()
	store := jsonfile.New[domain.Track](path, "liked")

	return likes.New(otel.Tracer("test"), logger, store), path
}

func TestLikesService_ToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, path := newFileService(t)

	assert.Empty(t, s.All(ctx))

	res, err := s.Toggle(ctx, song)
	require.NoError(t, err)
	assert.Equal(t, likes.ToggleResult{Liked: true, Message: "Song liked"}, res)

	all := s.All(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, song, all[0])

	res, err = s.Toggle(ctx, song)
	require.NoError(t, err)
	assert.Equal(t, likes.ToggleResult{Liked: false, Message: "Song unliked"}, res)
	assert.Empty(t, s.All(ctx))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"liked": []}`, string(raw))
}

func TestLikesService_ToggleKeepsOthersInOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := newFileService(t)

	for _, id := range []string{"a", "b", "c"} {
		_, err := s.Toggle(ctx, domain.Track{VideoID: id, Title: id})
		require.NoError(t, err)
	}
	_, err := s.Toggle(ctx, domain.Track{VideoID: "b"})
	require.NoError(t, err)

	all := s.All(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].VideoID)
	assert.Equal(t, "c", all[1].VideoID)
}

func TestLikesService_ToggleDropsDuration(t *testing.T) {
	ctx := context.Background()
	s, _ := newFileService(t)
	d := 212
	withDuration := song
	withDuration.Duration = &d

	_, err := s.Toggle(ctx, withDuration)
	require.NoError(t, err)

	assert.Nil(t, s.All(ctx)[0].Duration)
}

func TestLikesService_ConcurrentTogglesAreSerialized(t *testing.T) {
	ctx := context.Background()
	s, _ := newFileService(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Toggle(ctx, domain.Track{VideoID: string(rune('a' + i))})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.All(ctx), 10)
}

func TestLikesService_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("load error on toggle", func(t *testing.T) {
		store := &mocks.MockStore{}
		t.Cleanup(func() { store.AssertExpectations(t) })
		logger, hook := logtest.NewNullLogger()

		store.On("Load", mock.Anything).Return(nil, errors.New("permission denied")).Once()

		res, err := likes.New(otel.Tracer("test"), logger, store).Toggle(ctx, song)
		require.Error(t, err)
		assert.Equal(t, likes.ToggleResult{Liked: false, Message: "Failed to update liked songs"}, res)
		require.Len(t, hook.Entries, 1)
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	})

	t.Run("corrupt file is reported and left untouched", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "liked_songs.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"liked": [`), 0o644))
		logger, hook := logtest.NewNullLogger()
		s := likes.New(otel.Tracer("test"), logger, jsonfile.New[domain.Track](path, "liked"))

		res, err := s.Toggle(ctx, song)
		require.Error(t, err)
		assert.Equal(t, likes.ToggleResult{Liked: false, Message: "Failed to update liked songs"}, res)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.ErrorLevel, entry.Level)
		assert.Equal(t, path, entry.Data["path"])

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{"liked": [`, string(raw))
	})

	t.Run("save error reports unchanged state", func(t *testing.T) {
		store := &mocks.MockStore{}
		t.Cleanup(func() { store.AssertExpectations(t) })
		logger, _ := logtest.NewNullLogger()

		store.On("Load", mock.Anything).Return([]domain.Track{song}, nil).Once()
		store.On("Save", mock.Anything, []domain.Track{}).Return(errors.New("disk full")).Once()

		res, err := likes.New(otel.Tracer("test"), logger, store).Toggle(ctx, song)
		require.Error(t, err)
		assert.True(t, res.Liked)
		assert.Equal(t, "Failed to update liked songs", res.Message)
	})

	t.Run("load error on list is empty", func(t *testing.T) {
		store := &mocks.MockStore{}
		logger, hook := logtest.NewNullLogger()

		store.On("Load", mock.Anything).Return(nil, errors.New("decode")).Once()

		all := likes.New(otel.Tracer("test"), logger, store).All(ctx)
		assert.NotNil(t, all)
		assert.Empty(t, all)
		assert.Equal(t, "Failed to load liked songs", hook.LastEntry().Message)
	})
}
