package server

import (
	"flag"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"vlm/aircraft"
	"vlm/model"
	"vlm/solver"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
}

func NewServer(addr string, upgrader websocket.Upgrader) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	hub := NewHub()
	// 未下发环境前用默认演示构型
	demo, err := solver.NewSolver(aircraft.DefaultAirplane(), solver.LoadedConfig())
	if err != nil {
		log.Println("err: ", err)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	hub.conn = conn
	hub.s = demo
	hub.op = defaultOperatingPoint()
	defer conn.Close()
	defer close(hub.done)
	var msg model.Msg
	go hub.handleRequest()
	go hub.handleResponse()
	for {
		err = conn.ReadJSON(&msg)
		if err != nil {
			log.Println("err: ", err)
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() {
	flag.Parse()
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	err := http.ListenAndServe(s.addr, nil)
	if err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
