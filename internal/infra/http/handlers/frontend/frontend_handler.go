package frontend

import (
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

const indexFile = "index.html"

// FrontendHandler serves the built single-page app. Unknown paths fall back
// to index.html so client-side routing works.
type FrontendHandler struct {
	fileSystem fs.FS
}

func New(fileSystem fs.FS) *FrontendHandler {
	return &FrontendHandler{
		fileSystem: fileSystem,
	}
}

func (h *FrontendHandler) Serve(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	name := strings.TrimPrefix(path.Clean("/"+c.Request.URL.Path), "/")
	if name != "" && h.serveFile(c, name) {
		return
	}
	if h.serveFile(c, indexFile) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"error": "Frontend build not found"})
}

func (h *FrontendHandler) serveFile(c *gin.Context, name string) bool {
	f, err := h.fileSystem.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil || stat.IsDir() {
		return false
	}
	content, ok := f.(io.ReadSeeker)
	if !ok {
		return false
	}

	setCacheHeaders(c, name)
	http.ServeContent(c.Writer, c.Request, stat.Name(), stat.ModTime(), content)

	return true
}

// Vite hashed assets get a long cache; index.html must always revalidate.
func setCacheHeaders(c *gin.Context, name string) {
	switch {
	case strings.HasPrefix(name, "assets/"):
		c.Header("Cache-Control", "public, max-age=31536000, immutable")
	case name == indexFile:
		c.Header("Cache-Control", "no-cache")
	}
}
