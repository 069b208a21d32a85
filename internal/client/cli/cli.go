package cli

import (
	"fmt"
	"log/slog"

	"github.com/iudanet/listkeeper/internal/client/api"
	"github.com/iudanet/listkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/listkeeper/internal/models"
	syncer "github.com/iudanet/listkeeper/internal/sync"
)

// entityTypes перечисляет коллекции в порядке обхода
var entityTypes = []string{
	models.EntityTypeTask,
	models.EntityTypeList,
	models.EntityTypeNote,
}

// Deps собирает зависимости команд: локальное хранилище, API клиент
// и координатор синхронизации поверх них
type Deps struct {
	Store       *boltdb.Storage
	Client      *api.Client
	Coordinator *syncer.Coordinator
	Detector    *syncer.Detector
	Clock       syncer.Clock
	Logger      *slog.Logger
	OwnerID     string
}

// NewDeps строит зависимости команд вокруг открытого хранилища
func NewDeps(store *boltdb.Storage, client *api.Client, logger *slog.Logger, ownerID string) *Deps {
	clock := syncer.NewSystemClock()
	detector := syncer.NewDetector(syncer.DefaultThresholds())

	coordinator := syncer.NewCoordinator(syncer.Config{
		Records:   store,
		Cursors:   store,
		Pending:   store,
		Transport: client,
		Clock:     clock,
		Detector:  detector,
		Logger:    logger,
		OwnerID:   ownerID,
	})

	return &Deps{
		Store:       store,
		Client:      client,
		Coordinator: coordinator,
		Detector:    detector,
		Clock:       clock,
		Logger:      logger,
		OwnerID:     ownerID,
	}
}

// PrintUsage выводит справку по командам
func PrintUsage() {
	fmt.Println(`Usage: listkeeper [flags] <command> [args]

Commands:
  sync              Synchronize stale collections with the server
  watch             Run the sync loop until interrupted
  status            Show cursor freshness per collection
  list <type>       List active records of a collection
  add <type> <title> [body]
                    Add a record and push it to the server
  done <id>         Mark a task as done
  rm <type> <id>    Delete a record

Flags:
  -server   Server URL (default http://localhost:8080)
  -db       Path to local database
  -owner    Owner ID
  -version  Show version information

The access token is read from the LISTKEEPER_TOKEN environment variable.`)
}
