package main

import (
	"context"
	"fmt"
	"log"
	"os"

	echoconsole "github.com/nkminh14/uniconsole/apps/console/echo"
	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/auth"
	"github.com/nkminh14/uniconsole/core/student"
	exportsvc "github.com/nkminh14/uniconsole/services/export"
	logsvc "github.com/nkminh14/uniconsole/services/logger"
	"github.com/nkminh14/uniconsole/storage"
	"github.com/nkminh14/uniconsole/storage/inmem"
	"github.com/nkminh14/uniconsole/storage/restapi"
)

const backendPingAttempts = 5

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "CONSOLE : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	apiLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)

	repos, err := setUpStorage(conf, apiLogger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up storage: %v", err), err)
	}
	svcs := storage.NewServices(repos, conf.PageSize)

	admin, err := auth.NewAdmin(conf.Admin.Username, conf.Admin.Password)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up admin: %v", err), err)
	}

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate, translator := echoconsole.NewValidator()

	// =========================================================================
	// Start Console

	server, err := echoconsole.NewServer(echoconsole.ServerDeps{
		Conf:       conf,
		Logger:     logger,
		Services:   svcs,
		Admin:      admin,
		Exporter:   exportsvc.NewXLSXService(),
		Validate:   validate,
		Translator: translator,
	})
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up server: %v", err), err)
	}

	go func() {
		server.Start()
	}()
	logger.Info(fmt.Sprintf("listening on %s", conf.Server.Address))

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

// setUpStorage returns the backend repositories, or a seeded in-memory university in demo mode.
func setUpStorage(conf *core.Config, logger core.Logger) (storage.Repositories, error) {
	if conf.Demo {
		logger.Warn("demo mode: data lives in memory and is lost on exit")
		db := inmem.Open()
		inmem.Seed(db)
		return db.Repositories(), nil
	}

	client := restapi.NewClient(conf)
	ctx, cancel := context.WithTimeout(context.Background(), conf.API.Timeout*backendPingAttempts)
	defer cancel()
	if err := client.WaitReady(ctx, student.Path, backendPingAttempts); err != nil {
		// the console still serves pages, with errors, until the backend comes up
		logger.Error(fmt.Sprintf("backend %s unreachable: %v", conf.API.BaseURL, err), err)
	}
	return restapi.NewRepositories(client), nil
}
