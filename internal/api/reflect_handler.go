package api

import (
	"fmt"
	"net/http"

	"habitbloom/internal/companion"
	"habitbloom/internal/ledger"
	"habitbloom/internal/profile"
	"habitbloom/internal/reflection"

	"github.com/gin-gonic/gin"
)

// POST /reflect always answers 200 with a usable reflection; the source field
// tells which path produced it.
func ReflectHandler(mgr *profile.Manager, svc *reflection.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		uid := userId.(uint)

		var req reflection.Request
		mgr.View(uid, func(sess *profile.Session) {
			req = reflection.Request{
				CompletedHabits: sess.Ledger.CompletedLabels(ledger.CategoryDaily),
				CompanionType:   companion.Type(sess.CompanionType),
				CompanionStage:  companion.StageFor(sess.Ledger.TotalPoints()),
			}
		})

		res := svc.Reflect(c.Request.Context(), fmt.Sprintf("user:%d", uid), req)
		c.JSON(http.StatusOK, res)
	}
}
