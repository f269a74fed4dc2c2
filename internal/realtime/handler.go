package realtime

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ipr/pkg/auth"
	"github.com/GlebRadaev/ipr/pkg/utils"
)

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewHandler builds the websocket endpoint. An empty allowedOrigins accepts any origin.
func NewHandler(hub *Hub, allowedOrigins []string) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
	}
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(r *http.Request) bool { return true }
	}
	hosts := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		hosts[strings.ToLower(strings.TrimSuffix(o, "/"))] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		_, ok := hosts[strings.ToLower(u.Scheme+"://"+u.Host)]
		return ok
	}
}

// Subscribe godoc
//
//	@Summary		Subscribe to change events
//	@Description	Upgrades to a websocket that streams {table, action, id, group_id, user_id} events
//	@Tags			realtime
//	@Security		BearerAuth
//	@Param			token	query		string	false	"Bearer token when headers cannot be set"
//	@Success		101
//	@Failure		401	{object}	utils.Response
//	@Router			/api/realtime [get]
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Info("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &Client{
		hub:    h.hub,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		userID: session.UserID,
		admin:  session.IsAdmin,
	}
	if !h.hub.join(c) {
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}
