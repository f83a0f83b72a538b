package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RoyceNZ/lagom-map/internal/archive"
	"github.com/RoyceNZ/lagom-map/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lagommap",
		Short: "Quota-constrained biome map generator",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(fetchCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var (
		out    string
		dbPath string
		seed   float64
	)

	cmd := &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Run the full engine and print the per-biome count report",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(args[0], out, dbPath, seed)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write a compressed map snapshot to this path")
	cmd.Flags().StringVar(&dbPath, "db", "", "record the run in this SQLite archive")
	cmd.Flags().Float64Var(&seed, "seed", 0, "terrain seed (overrides the spec; 0 picks a session seed)")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a world spec without generating a map",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func statsCmd() *cobra.Command {
	var (
		dbPath   string
		snapshot string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report archived runs or inspect a map snapshot",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runStats(dbPath, snapshot, limit)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite run archive to read")
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "map snapshot file to inspect")
	cmd.Flags().IntVar(&limit, "limit", 20, "number of archived runs to show")
	return cmd
}

func serveCmd() *cobra.Command {
	var (
		port   int
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server with live regeneration",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var db *archive.DB
			if dbPath != "" {
				var err error
				if db, err = archive.Open(dbPath); err != nil {
					return err
				}
				defer db.Close()
			}
			srv := server.New(args[0], port, db)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	cmd.Flags().StringVar(&dbPath, "db", "", "record runs in this SQLite archive")
	return cmd
}
