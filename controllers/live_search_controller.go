package controllers

import (
	"time"

	"dukicks/config"
	"dukicks/middleware"
	"dukicks/models"
	"dukicks/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	liveSearchWriteWait  = 10 * time.Second
	liveSearchPongWait   = 60 * time.Second
	liveSearchPingPeriod = 54 * time.Second
	liveSearchQueueSize  = 8
)

var searchUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     middleware.OriginAllowed,
}

// @Summary Live search
// @Description WebSocket. Send a LiveSearchMessage per keystroke; results arrive once typing pauses and blank input clears at once
// @Tags Search
// @Success 101 {object} services.SearchUpdate
// @Failure 403 {string} string "Origin not allowed"
// @Router /search/live [get]
func (ctrl *ProductController) LiveSearch(c *gin.Context) {
	conn, err := searchUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the error response.
		config.Log.Warn("live search upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	send := make(chan services.SearchUpdate, liveSearchQueueSize)
	done := make(chan struct{})
	box := services.NewSearchBox(ctrl.Catalog.All(), ctrl.SearchDebounce, ctrl.SuggestionLimit, func(u services.SearchUpdate) {
		select {
		case send <- u:
		case <-done:
		}
	})
	go writeSearchUpdates(conn, send, done)

	conn.SetReadDeadline(time.Now().Add(liveSearchPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(liveSearchPongWait))
	})

	for {
		var msg models.LiveSearchMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				config.Log.Warn("live search connection closed", zap.Error(err))
			}
			break
		}
		box.Input(msg.Query)
	}

	box.Close()
	close(done)
}

// writeSearchUpdates is the only writer on conn. A failed write closes the
// connection so the read loop ends too.
func writeSearchUpdates(conn *websocket.Conn, send <-chan services.SearchUpdate, done <-chan struct{}) {
	ticker := time.NewTicker(liveSearchPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case u := <-send:
			conn.SetWriteDeadline(time.Now().Add(liveSearchWriteWait))
			if err := conn.WriteJSON(u); err != nil {
				conn.Close()
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(liveSearchWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				conn.Close()
				return
			}
		case <-done:
			return
		}
	}
}
