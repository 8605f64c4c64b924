// Package main runs the fitrollup MCP server over stdio, for local MCP clients.
// The same tools are served by the main backend at /mcp.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/2beens/fitrollup/internal/activity"
	"github.com/2beens/fitrollup/internal/cardio"
	"github.com/2beens/fitrollup/internal/config"
	"github.com/2beens/fitrollup/internal/db"
	"github.com/2beens/fitrollup/internal/gym"
	rollupmcp "github.com/2beens/fitrollup/internal/mcp"
	"github.com/2beens/fitrollup/internal/nutrition"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	owner := flag.String("owner", "", "owner (user) id whose summaries are served")
	flag.Parse()

	if *owner == "" {
		log.Fatal("owner not set, use -owner")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.DataSource != "postgres" {
		log.Fatalf("stdio MCP server needs the postgres data source, got [%s]", cfg.DataSource)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBPassword:     os.Getenv("FIT_DB_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	// no summary cache here, every call reads straight from the db
	services := rollupmcp.Services{
		Activity:  activity.NewService(activity.NewRepo(dbPool), nil, nil),
		Gym:       gym.NewService(gym.NewRepo(dbPool), nil, nil),
		Cardio:    cardio.NewService(cardio.NewRepo(dbPool), nil, nil),
		Nutrition: nutrition.NewService(nutrition.NewRepo(dbPool), nil, nil),
	}
	server := rollupmcp.NewServer(services, *owner, cfg.WindowSize, cfg.MaxWindowSize)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
