package http

import (
	"net/http"

	"github.com/dkeye/Chat/internal/domain"
	"github.com/dkeye/Chat/internal/protocol"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// The cookie session remembers the display name so a fresh websocket
// can log in before the client says anything.

func getSession(c *gin.Context) {
	username, _ := sessions.Default(c).Get(sessionUserKey).(string)
	c.JSON(http.StatusOK, gin.H{"username": username})
}

func postSession(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, protocol.NewError(protocol.ErrBadPayload))
		return
	}
	name, err := domain.NewUsername(body.Username)
	if err != nil {
		c.JSON(http.StatusBadRequest, protocol.NewError(err))
		return
	}

	s := sessions.Default(c)
	s.Set(sessionUserKey, name)
	if err := s.Save(); err != nil {
		log.Error().Err(err).Str("module", "adapters.http").Msg("save session")
		c.JSON(http.StatusInternalServerError, protocol.NewError(err))
		return
	}
	log.Info().Str("module", "adapters.http").Str("ct", c.GetString("client_token")).Str("username", name).Msg("session login")
	c.JSON(http.StatusOK, gin.H{"username": name})
}

func deleteSession(c *gin.Context) {
	s := sessions.Default(c)
	s.Delete(sessionUserKey)
	if err := s.Save(); err != nil {
		log.Error().Err(err).Str("module", "adapters.http").Msg("save session")
		c.JSON(http.StatusInternalServerError, protocol.NewError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func nonNilRooms(rooms []domain.Room) []domain.Room {
	if rooms == nil {
		return []domain.Room{}
	}
	return rooms
}
