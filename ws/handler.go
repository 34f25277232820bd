package ws

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/teklifgo/server/models"
)

// TokenValidator, WebSocket handler'ın JWT doğrulaması için kullandığı interface.
//
// services.AuthService'e doğrudan bağımlılık circular dependency yaratırdı
// (services → ws → services). Sadece ihtiyaç duyulan tek metodu içeren
// küçük bir interface tanımlanır; authService bunu implicit olarak karşılar.
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
}

// upgrader, HTTP bağlantısını WebSocket'e yükseltir.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CheckOrigin: frontend Netlify'da, API Railway'de — farklı origin'ler.
	// CORS katmanı HTTP endpoint'lerini koruyor; WS auth token ile yapılıyor.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler, WebSocket bağlantı isteklerini işleyen HTTP handler'ı.
type Handler struct {
	hub            *Hub
	tokenValidator TokenValidator
}

// NewHandler, yeni bir WebSocket handler oluşturur.
func NewHandler(hub *Hub, tokenValidator TokenValidator) *Handler {
	return &Handler{
		hub:            hub,
		tokenValidator: tokenValidator,
	}
}

// HandleConnection, HTTP bağlantısını WebSocket'e yükseltir ve client'ı
// Hub'a kaydeder.
//
// Tarayıcı WebSocket API'si custom header göndermeyi desteklemez,
// token query parameter ile gelir:
//
//	wss://server/ws?token=JWT_TOKEN
func (h *Handler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	claims, err := h.tokenValidator.ValidateAccessToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed for user %s: %v", claims.UserID, err)
		return
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		userID: claims.UserID,
		send:   make(chan []byte, sendBufferSize),
	}

	h.hub.register <- client

	client.sendEvent(Event{Op: OpReady, Data: ReadyData{UserID: claims.UserID}})

	// WritePump ayrı goroutine'de; ReadPump bu goroutine'de bloklar,
	// aksi halde handler hemen döner ve bağlantı kapanır.
	go client.WritePump()
	client.ReadPump()
}
