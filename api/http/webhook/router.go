package webhook

import "github.com/gin-gonic/gin"

func NewRouter(h Handler, path string) (r *gin.Engine) {
	r = gin.New()
	r.Use(gin.Recovery())
	r.GET("/", h.Health)
	r.POST(path, h.Deliver)
	return
}
