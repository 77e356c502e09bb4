package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/stemsi/registrar/internal/config"
	"github.com/stemsi/registrar/internal/logger"
	"github.com/stemsi/registrar/internal/repository"
	"github.com/stemsi/registrar/internal/seed"
	"github.com/stemsi/registrar/internal/service"
	"github.com/stemsi/registrar/internal/shell"
	"github.com/stemsi/registrar/internal/validator"
)

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var (
		seedFile         string
		logLevel         string
		rejectDuplicates bool
	)

	cmd := &cobra.Command{
		Use:   "registrar",
		Short: "Interactive course registration",
		Long: `registrar keeps an in-memory course catalog and student list and lets
you register students into courses or drop them, subject to course capacity.

All data lives in memory and is lost on exit.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// ─── Load Configuration ────────────────────────────────────
			cfg := config.Load()
			if cmd.Flags().Changed("seed") {
				cfg.SeedFile = seedFile
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("reject-duplicates") {
				cfg.RejectDuplicateRegistration = rejectDuplicates
			}

			// ─── Initialize Logger ─────────────────────────────────────
			log := logger.Setup(cfg.LogLevel, cfg.LogFormat, stderr)
			log.Info().
				Str("log_level", cfg.LogLevel).
				Str("seed_file", cfg.SeedFile).
				Bool("reject_duplicates", cfg.RejectDuplicateRegistration).
				Msg("Starting registrar")

			// ─── Initialize Validator ──────────────────────────────────
			validator.Setup()

			// ─── Initialize Registry ───────────────────────────────────
			reg := service.NewRegistry(
				repository.NewCourseRepository(),
				repository.NewStudentRepository(),
				service.RegistryOptions{RejectDuplicateRegistration: cfg.RejectDuplicateRegistration},
				log,
			)

			// ─── Seed Catalog ──────────────────────────────────────────
			catalog, err := seed.LoadFile(cfg.SeedFile)
			if err != nil {
				log.Error().Err(err).Msg("Failed to load seed catalog")
				return fmt.Errorf("load seed catalog: %w", err)
			}
			if err := catalog.Apply(cmd.Context(), reg); err != nil {
				log.Error().Err(err).Msg("Failed to apply seed catalog")
				return fmt.Errorf("apply seed catalog: %w", err)
			}
			log.Info().
				Int("courses", len(reg.ListAllCourses())).
				Int("students", len(reg.ListStudents())).
				Msg("Catalog loaded")

			// ─── Run Shell ─────────────────────────────────────────────
			if err := shell.New(reg, stdin, stdout, log).Run(cmd.Context()); err != nil {
				return err
			}

			log.Info().Msg("Shutdown complete")
			return nil
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVar(&seedFile, "seed", "", "YAML catalog to load at startup (default: built-in catalog)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	cmd.Flags().BoolVar(&rejectDuplicates, "reject-duplicates", false, "refuse to register a student into a course they already hold")

	return cmd
}
