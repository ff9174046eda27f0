// Package dev provides the development-time live reload server used by
// the sproute CLI. Browsers connect over a websocket and are told to
// reload when watched files change.
package dev

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// MessageType classifies a reload message.
type MessageType string

const (
	TypeReload MessageType = "reload"
	TypeCSS    MessageType = "css"
	TypeError  MessageType = "error"
)

// Message is the JSON payload sent to connected browsers.
type Message struct {
	Type  MessageType `json:"type"`
	File  string      `json:"file,omitempty"`
	Error string      `json:"error,omitempty"`
}

// ReloadServer tracks connected browsers and broadcasts reload messages.
type ReloadServer struct {
	mu       sync.RWMutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

func NewReloadServer() *ReloadServer {
	return &ReloadServer{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Dev only, any origin may connect
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleWebSocket upgrades the request and holds the connection open
// until the browser goes away.
func (rs *ReloadServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := rs.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	rs.mu.Lock()
	rs.clients[conn] = true
	rs.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	rs.mu.Lock()
	delete(rs.clients, conn)
	rs.mu.Unlock()
	conn.Close()
}

// NotifyReload tells every connected browser to do a full reload.
func (rs *ReloadServer) NotifyReload(file string) {
	rs.broadcast(Message{Type: TypeReload, File: file})
}

// NotifyCSS tells browsers to refresh stylesheets without a full reload.
func (rs *ReloadServer) NotifyCSS(file string) {
	rs.broadcast(Message{Type: TypeCSS, File: file})
}

// NotifyError surfaces an error message in connected browsers.
func (rs *ReloadServer) NotifyError(errMsg string) {
	rs.broadcast(Message{Type: TypeError, Error: errMsg})
}

func (rs *ReloadServer) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	rs.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(rs.clients))
	for c := range rs.clients {
		conns = append(conns, c)
	}
	rs.mu.RUnlock()

	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			rs.mu.Lock()
			delete(rs.clients, c)
			rs.mu.Unlock()
			c.Close()
		}
	}
}

// ClientCount reports how many browsers are connected.
func (rs *ReloadServer) ClientCount() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.clients)
}

// Close drops every connection.
func (rs *ReloadServer) Close() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	for c := range rs.clients {
		c.Close()
		delete(rs.clients, c)
	}
}

// ClientScript is injected into served pages in dev mode. It connects to
// the reload endpoint and acts on broadcast messages.
const ClientScript = `
<script>
(function() {
	'use strict';

	var delay = 1000;

	function connect() {
		var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
		var ws = new WebSocket(proto + '//' + location.host + '/_sproute/reload');

		ws.onopen = function() {
			console.log('[sproute] live reload connected');
			delay = 1000;
		};

		ws.onmessage = function(e) {
			var msg;
			try { msg = JSON.parse(e.data); } catch (err) { return; }

			if (msg.type === 'reload') {
				location.reload();
			} else if (msg.type === 'css') {
				document.querySelectorAll('link[rel="stylesheet"]').forEach(function(link) {
					var url = new URL(link.href);
					url.searchParams.set('_reload', Date.now());
					link.href = url.toString();
				});
			} else if (msg.type === 'error') {
				console.error('[sproute]', msg.error);
			}
		};

		ws.onclose = function() {
			setTimeout(function() {
				delay = Math.min(delay * 2, 30000);
				connect();
			}, delay);
		};

		ws.onerror = function() { ws.close(); };
	}

	if (document.readyState === 'loading') {
		document.addEventListener('DOMContentLoaded', connect);
	} else {
		connect();
	}
})();
</script>
`
