package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/pipeline"
	"github.com/jonathan/resume-extractor/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the upload server",
	Long:  `Start an HTTP server that accepts résumé uploads on POST /upload and responds with the extracted fields.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on (overrides RESUME_PORT)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Log at debug level")
	rootCmd.AddCommand(serveCmd)
}

// newServer builds the extraction pipeline and the HTTP server from cfg
func newServer(cmd *cobra.Command, cfg config.Config) (*server.Server, error) {
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	extractor, err := pipeline.New(pipeline.Options{
		Lexicon:   cfg.Lexicon(),
		TopN:      cfg.FuzzyTopN,
		Threshold: cfg.FuzzyThreshold,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		UploadDir:      cfg.UploadDir,
		MaxUploadBytes: cfg.MaxUploadMB << 20,
		Logger:         logger,
	}, extractor)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}
	return srv, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = serveVerbose
	}

	srv, err := newServer(cmd, cfg)
	if err != nil {
		return err
	}

	return srv.Start()
}
