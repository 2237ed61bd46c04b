package media_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angristan/nebula-backend/internal/domain"
	handler "github.com/angristan/nebula-backend/internal/infra/http/handlers/media"
	"github.com/angristan/nebula-backend/internal/infra/http/handlers/media/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel"
)

func serve(t *testing.T, target string, call func(h *handler.MediaHandler, c *gin.Context), setup func(m *mocks.MockMediaService)) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, target, nil)

	mockService := &mocks.MockMediaService{}
	t.Cleanup(func() {
		mockService.AssertExpectations(t)
	})
	if setup != nil {
		setup(mockService)
	}

	call(handler.New(otel.Tracer("test"), mockService), ctx)

	return recorder
}

func TestMediaHandler_Search(t *testing.T) {
	search := func(h *handler.MediaHandler, c *gin.Context) { h.Search(c) }

	t.Run("missing query", func(t *testing.T) {
		rec := serve(t, "/search", search, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "q is required"}`, rec.Body.String())
	})

	t.Run("empty query is passed through", func(t *testing.T) {
		rec := serve(t, "/search?q=", search, func(m *mocks.MockMediaService) {
			m.On("Search", mock.Anything, "").Return([]domain.Track{}).Once()
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("results", func(t *testing.T) {
		rec := serve(t, "/search?q=daft+punk", search, func(m *mocks.MockMediaService) {
			m.On("Search", mock.Anything, "daft punk").
				Return([]domain.Track{{VideoID: "a", Title: "One More Time", Artist: "Daft Punk", Thumbnail: "https://img.youtube.com/vi/a/hqdefault.jpg"}}).
				Once()
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"videoId":"a","title":"One More Time","artist":"Daft Punk","thumbnail":"https://img.youtube.com/vi/a/hqdefault.jpg"}]`, rec.Body.String())
	})

	t.Run("empty list", func(t *testing.T) {
		rec := serve(t, "/search?q=zzz", search, func(m *mocks.MockMediaService) {
			m.On("Search", mock.Anything, "zzz").Return([]domain.Track{}).Once()
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestMediaHandler_UpNext(t *testing.T) {
	upNext := func(h *handler.MediaHandler, c *gin.Context) { h.UpNext(c) }

	t.Run("missing video id", func(t *testing.T) {
		rec := serve(t, "/autoplay/upnext", upNext, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wraps list", func(t *testing.T) {
		rec := serve(t, "/autoplay/upnext?videoId=seed", upNext, func(m *mocks.MockMediaService) {
			m.On("UpNext", mock.Anything, "seed").
				Return([]domain.Track{{VideoID: "r1", Title: "t", Artist: "a", Thumbnail: "th"}}).
				Once()
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"upnext":[{"videoId":"r1","title":"t","artist":"a","thumbnail":"th"}]}`, rec.Body.String())
	})

	t.Run("failure shape", func(t *testing.T) {
		rec := serve(t, "/autoplay/upnext?videoId=seed", upNext, func(m *mocks.MockMediaService) {
			m.On("UpNext", mock.Anything, "seed").Return([]domain.Track{}).Once()
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"upnext":[]}`, rec.Body.String())
	})
}

func TestMediaHandler_TrackInfo(t *testing.T) {
	trackInfo := func(h *handler.MediaHandler, c *gin.Context) { h.TrackInfo(c) }

	t.Run("missing video id", func(t *testing.T) {
		rec := serve(t, "/track_info", trackInfo, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "video_id is required"}`, rec.Body.String())
	})

	t.Run("defaults are serialized in full", func(t *testing.T) {
		zero := 0
		rec := serve(t, "/track_info?video_id=abc", trackInfo, func(m *mocks.MockMediaService) {
			m.On("TrackInfo", mock.Anything, "abc").
				Return(domain.Track{
					VideoID:   "abc",
					Title:     "Unknown Title",
					Artist:    "Unknown Artist",
					Duration:  &zero,
					Thumbnail: "https://img.youtube.com/vi/abc/hqdefault.jpg",
				}).
				Once()
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"videoId": "abc",
			"title": "Unknown Title",
			"artist": "Unknown Artist",
			"duration": 0,
			"thumbnail": "https://img.youtube.com/vi/abc/hqdefault.jpg"
		}`, rec.Body.String())
	})
}
