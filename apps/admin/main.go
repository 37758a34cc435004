package main

import (
	"log"
	"os"

	"github.com/nkminh14/uniconsole/core"
	exportsvc "github.com/nkminh14/uniconsole/services/export"
	"github.com/nkminh14/uniconsole/storage"
	"github.com/nkminh14/uniconsole/storage/inmem"
	"github.com/nkminh14/uniconsole/storage/restapi"
)

func main() {
	logger := log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	conf := core.NewConfig()

	var repos storage.Repositories
	if conf.Demo {
		db := inmem.Open()
		inmem.Seed(db)
		repos = db.Repositories()
	} else {
		repos = restapi.NewRepositories(restapi.NewClient(conf))
	}

	// start CLI
	cli := newCommandLine(storage.NewServices(repos, conf.PageSize), exportsvc.NewXLSXService(), os.Stdout)
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
