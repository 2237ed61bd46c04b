package server

import (
	"github.com/gin-gonic/gin"
)

type StreamHandler interface {
	Resolve(ctx *gin.Context)
}

type MediaHandler interface {
	Search(ctx *gin.Context)
	UpNext(ctx *gin.Context)
	TrackInfo(ctx *gin.Context)
}

type LikesHandler interface {
	Toggle(ctx *gin.Context)
	All(ctx *gin.Context)
}

type FrontendHandler interface {
	Serve(ctx *gin.Context)
}

type Handlers struct {
	Stream   StreamHandler
	Media    MediaHandler
	Likes    LikesHandler
	Frontend FrontendHandler
}
