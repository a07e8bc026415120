package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	env       string
	startedAt time.Time
}

func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{env: env, startedAt: time.Now()}
}

func (h *HealthHandler) Check(c *gin.Context) {
	respondData(c, http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    time.Since(h.startedAt).Seconds(),
		"timestamp": time.Now().UTC(),
		"env":       h.env,
	})
}
