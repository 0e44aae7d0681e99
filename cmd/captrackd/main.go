package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	configs "github.com/auditline/captrack/pkg/configs/captrackd"
	kpg "github.com/auditline/captrack/pkg/db/postgres"
	"github.com/auditline/captrack/pkg/utils/filewatch"
)

func main() {

	pconfig := flag.String(
		"config", os.Getenv("CAPTRACK_CONFIG"), "path to config file",
	)
	schemaRepo := flag.String("schema-repo", os.Getenv("CAPTRACK_SCHEMA"), "schema repository path")
	loglevel := flag.String("loglevel", "", "log level. debug|info|warn|error|off (default: loglevel in the config file)")

	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancel()

	conf, err := configs.LoadCaptrackConfig(*pconfig)
	if err != nil {
		panic(err)
	}
	if dburi := os.Getenv("CAPTRACK_DBURI"); dburi != "" {
		conf.Cluster.DBURI = dburi
	}
	if *loglevel == "" {
		*loglevel = conf.LogLevel
	}

	{
		// quit to restart when the config file is updated.
		wctx, wcancel, err := filewatch.UntilModifyContext(ctx, *pconfig)
		if err != nil {
			panic(err)
		}
		defer wcancel()
		ctx = wctx
	}

	db, err := kpg.New(
		ctx, conf.Cluster.DBURI,
		kpg.WithSchemaRepository(*schemaRepo),
		kpg.WithPoolSize(conf.Cluster.Pool.Min, conf.Cluster.Pool.Max),
	)
	if err != nil {
		panic(err)
	}
	defer db.Close()
	{
		ctx_, ccan := db.Schema().Context(ctx)
		defer ccan()
		ctx = ctx_
	}

	server := BuildServer(db, *loglevel)
	for _, r := range server.Routes() {
		server.Logger.Debugf("- mount handler: %s %s", strings.ToUpper(r.Method), r.Path)
	}

	ch := make(chan error, 1)
	go func() {
		defer close(ch)
		if err := server.Start(fmt.Sprintf(":%d", conf.Port)); err != nil && err != http.ErrServerClosed {
			ch <- err
		}
	}()

	exit := 0
	select {
	case <-ctx.Done(): // wait
		if err := ctx.Err(); err != nil {
			server.Logger.Infof("context has been done: %s, cause: %s", err, context.Cause(ctx))
			exit = 1
		}
	case err := <-ch:
		if err != nil {
			server.Logger.Error("server stops with error:", err)
			exit = 1
		}
	}

	{
		server.Logger.Info("shutting down...")
		qctx, qcancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer qcancel()

		if err := server.Shutdown(qctx); err != nil {
			server.Logger.Fatalf("Shutdown with error. %+v", err)
			os.Exit(1)
		}
		os.Exit(exit)
	}
}
