package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	APIPathDecode   = "/api/decode"
	APIPathChecksum = "/api/checksum"
	APIPathHexDump  = "/api/hexdump"
	APIPathStats    = "/api/stats"
)

func SetDecodeRouter(g *gin.Engine, impl DecodeAPI, limiter *rate.Limiter) {
	h := DecodeHandler{impl: impl}
	g.POST(APIPathDecode, rateLimit(limiter), h.Decode)
	g.POST(APIPathChecksum, h.Checksum)
	g.POST(APIPathHexDump, h.HexDump)
	g.GET(APIPathStats, h.Stats)
}

func rateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter != nil && !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
