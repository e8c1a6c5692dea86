package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/gstbill/internal/config"
	"github.com/smallbiznis/gstbill/internal/migration"
	"github.com/smallbiznis/gstbill/internal/server"
	"github.com/smallbiznis/gstbill/pkg/db"
	"github.com/smallbiznis/gstbill/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
