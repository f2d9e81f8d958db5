package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/rs/cors"

	"github.com/pairplay/chess-relay/util"
	"github.com/pairplay/chess-relay/ws"
)

func main() {
	config, err := util.LoadConfig()

	if err != nil {
		log.Fatal(err)
	}

	manager := ws.NewManager(config, ws.NewRegistry())

	mux := http.NewServeMux()
	mux.HandleFunc("/newgame", manager.NewGameHandler)
	mux.HandleFunc("/ws", manager.ServeWS)

	handler := cors.New(cors.Options{
		AllowedOrigins: config.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet},
	}).Handler(mux)

	log.Println("listening on port", config.Port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", config.Port), handler))
}
