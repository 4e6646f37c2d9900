package main

import (
	"context"
	"log"

	"github.com/mango-services/loyalty-auth/internal/server"
	"github.com/mango-services/loyalty-auth/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewRewardApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
