package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"scanintake/internal/export"
	"scanintake/internal/store"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type exportOpts struct {
	driver      string
	databaseURL string
	sqlitePath  string
	output      string
}

func run(args []string) error {
	_ = godotenv.Load()

	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	db, err := store.Open(opts.driver, opts.databaseURL, opts.sqlitePath)
	if err != nil {
		return err
	}

	st := store.New(db)
	// Ensure the schema exists so exporting a fresh database yields a
	// header-only file instead of a query error.
	if err := st.Init(context.Background()); err != nil {
		return err
	}

	var out io.Writer
	if opts.output == "-" {
		out = os.Stdout
	} else {
		f, cerr := os.Create(opts.output)
		if cerr != nil {
			return fmt.Errorf("open destination: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to close %s: %v\n", opts.output, cerr)
			}
		}()
		out = f
	}

	runID := uuid.NewString()
	count, err := export.New(st).ExportAll(context.Background(), out)
	if err != nil {
		return fmt.Errorf("run %s: %w", runID, err)
	}

	dest := opts.output
	if dest == "-" {
		dest = "stdout"
	}
	fmt.Fprintf(os.Stderr, "run %s: exported %d scans to %s\n", runID, count, dest)
	return nil
}

func parseFlags(args []string) (exportOpts, error) {
	fs := flag.NewFlagSet("scanexport", flag.ContinueOnError)

	var o exportOpts
	fs.StringVar(&o.driver, "driver", getenv("DB_DRIVER", "sqlite"), "database driver (sqlite or postgres)")
	fs.StringVar(&o.databaseURL, "dsn", os.Getenv("DATABASE_URL"), "postgres DSN (driver=postgres)")
	fs.StringVar(&o.sqlitePath, "db", getenv("SQLITE_PATH", "data/inventory.db"), "sqlite database path (driver=sqlite)")
	fs.StringVar(&o.output, "o", "scan-export.csv", "output file, or - for stdout")

	if err := fs.Parse(args); err != nil {
		return exportOpts{}, err
	}
	return o, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
