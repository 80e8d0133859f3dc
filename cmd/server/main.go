package main

import (
	"log"

	"negachess/bots"
	"negachess/config"
	"negachess/game"
	"negachess/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	bot, err := bots.New(cfg.Engine.Bot, bots.Options{
		Depth:   cfg.Engine.Depth,
		Seed:    cfg.Engine.Seed,
		Verbose: cfg.Logs.Search,
	})
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	ctrl := game.NewController(game.Options{
		Bot:        bot,
		Scheduler:  game.TimerScheduler{},
		ReplyDelay: cfg.Game.ReplyDelay,
		ThinkDelay: cfg.Game.ThinkDelay,
	})

	router := server.New(ctrl).Router(server.Config{
		WebRoot:      cfg.Server.WebRoot,
		AllowOrigins: cfg.Server.AllowOrigins,
	})
	log.Printf("playing %s, HTTP listening on %s", bot.Name(), cfg.Server.Addr)
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
