package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger), metrics(), cors())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1", s.authorize())
	{
		graph := v1.Group("/graph")
		{
			graph.GET("", s.getGraph)
			graph.PUT("", s.putGraph)
			graph.POST("/build", s.buildGraph)
			graph.GET("/path", s.getPath)
		}

		v1.PUT("/start", s.putStart)

		route := v1.Group("/route")
		{
			route.GET("", s.getRoute)
			route.POST("", s.planRoute)
		}

		ms := v1.Group("/mission")
		{
			ms.POST("/preview", s.previewMission)
			ms.POST("/start", s.startMission)
			ms.POST("/land", s.landMission)
			ms.GET("/position", s.getPosition)
			ms.GET("/history", s.getMissions)
		}

		nodes := v1.Group("/nodes")
		{
			nodes.GET("/labels", s.getLabels)
			nodes.PUT("/:id/label", s.putLabel)
		}

		pb := v1.Group("/playback")
		{
			pb.GET("", s.getPlayback)
			pb.POST("/start", s.startPlayback)
			pb.POST("/stop", s.stopPlayback)
		}
	}

	return r
}
