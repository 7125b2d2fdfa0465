// pulse is the record-keeping tool for the Sai Balaji road construction
// business: projects, field progress, payment requests, vehicles,
// drivers, users and the notifications the payment workflow produces.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/config"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/repo"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/storage"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/storage/memory"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/storage/sqlite"
)

var rootCmd = &cobra.Command{
	Use:           "pulse",
	Short:         "Role-based record keeping for road construction projects",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Flags override config file and environment.
		for _, key := range []string{"json", "no-db", "database", "actor", "namespace"} {
			if f := cmd.Flags().Lookup(key); f != nil && f.Changed {
				config.Set(key, f.Value.String())
			}
		}
	},
}

func main() {
	if err := config.Initialize(); err != nil {
		FatalError("%v", err)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Bool("json", false, "output as JSON")
	pf.Bool("no-db", false, "use an in-memory store (records last for one command)")
	pf.String("database", "", "path to the database file")
	pf.String("actor", "", "user id performing the change")
	pf.String("namespace", "", "collection key namespace")
}

// FatalError prints an error to stderr and exits 1.
func FatalError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// openStore opens the configured storage backend.
func openStore() storage.Store {
	if config.GetBool("no-db") {
		return memory.New()
	}
	store, err := sqlite.New(config.DatabasePath())
	if err != nil {
		FatalError("%v", err)
	}
	return store
}

// openRepos wires the repositories over the configured store. Callers
// must Close the returned store.
func openRepos() (*repo.Repositories, storage.Store) {
	store := openStore()
	return repo.New(store, config.Namespace()), store
}

func jsonOutput() bool {
	return config.GetBool("json")
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		FatalError("encoding output: %v", err)
	}
	fmt.Println(string(data))
}

// actor returns who is performing the change: --actor flag, PULSE_ACTOR
// or config.yaml. Fatal when required and absent.
func actor() string {
	a := config.Actor()
	if a == "" {
		FatalError("actor required (set --actor, PULSE_ACTOR or actor in config.yaml)")
	}
	return a
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
