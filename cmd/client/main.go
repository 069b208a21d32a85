package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/listkeeper/internal/client/api"
	"github.com/iudanet/listkeeper/internal/client/cli"
	"github.com/iudanet/listkeeper/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "listkeeper-client.db", "Path to local database")
	ownerID := flag.String("owner", "", "Owner ID")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	if *ownerID == "" {
		fmt.Fprintln(os.Stderr, "Error: -owner is required")
		os.Exit(1)
	}

	// Создаем контекст
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент, токен берем из окружения
	apiClient := api.NewClient(*serverURL)
	if token := os.Getenv("LISTKEEPER_TOKEN"); token != "" {
		apiClient.SetToken(token)
	}

	deps := cli.NewDeps(boltStorage, apiClient, logger, *ownerID)

	// Выполняем команду
	if err := runCommand(ctx, deps, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, deps *cli.Deps, command string, args []string) error {
	switch command {
	case "sync":
		syncFlags := flag.NewFlagSet("sync", flag.ExitOnError)
		force := syncFlags.Bool("force", false, "Sync even when the replica is fresh")
		if err := syncFlags.Parse(args); err != nil {
			return err
		}
		return cli.RunSync(ctx, deps, *force)
	case "watch":
		return cli.RunWatch(ctx, deps)
	case "status":
		return cli.RunStatus(ctx, deps)
	case "list":
		if len(args) < 1 {
			return fmt.Errorf("usage: list <type>")
		}
		return cli.RunList(ctx, deps, args[0])
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: add <type> <title> [body]")
		}
		body := ""
		if len(args) > 2 {
			body = args[2]
		}
		return cli.RunAdd(ctx, deps, args[0], args[1], body)
	case "done":
		if len(args) < 1 {
			return fmt.Errorf("usage: done <id>")
		}
		return cli.RunDone(ctx, deps, args[0])
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: rm <type> <id>")
		}
		return cli.RunRm(ctx, deps, args[0], args[1])
	default:
		cli.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printVersion() {
	fmt.Printf("ListKeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
