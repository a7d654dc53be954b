package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/protanno/protanno/internal/client"
	"github.com/protanno/protanno/internal/config"
	"github.com/protanno/protanno/internal/errors"
	"github.com/protanno/protanno/internal/ops"
	"github.com/protanno/protanno/internal/protein"
	"github.com/protanno/protanno/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config, baseDir string) *cli.App {
	app := &cli.App{
		Name:    "protanno",
		Usage:   "Protein sequence and structure annotator",
		Version: Version,
		Commands: []*cli.Command{
			serveCmd(db, cfg, baseDir),
			importCmd(db, cfg, baseDir),
			listCmd(db),
			showCmd(db),
			annotateCmd(db),
			annotationsCmd(db),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// serveCmd creates the serve command.
func serveCmd(db *sql.DB, cfg *config.Config, baseDir string) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the viewer web server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Aliases: []string{"b"}, Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8700, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(db, cfg, baseDir, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// importCmd creates the import command.
func importCmd(db *sql.DB, cfg *config.Config, baseDir string) *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Import a PDB file and extract its sequence",
		ArgsUsage: "<file.pdb>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Markdown description shown on the viewer page"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("a .pdb file path is required"))
			}
			path := c.Args().First()

			data, err := os.ReadFile(path)
			if err != nil {
				return outputError(errors.NewInvalidUpload(err.Error()))
			}

			input := ops.UploadInput{
				Filename: filepath.Base(path),
				Data:     data,
			}
			if desc := c.String("description"); desc != "" {
				input.Description = &desc
			}

			output, err := ops.Upload(c.Context, db, cfg, baseDir, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List stored proteins, newest first",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 20, Usage: "Maximum items to return"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Value: 0, Usage: "Items to skip"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.List(c.Context, db, ops.ListInput{
				Limit:  c.Int("limit"),
				Offset: c.Int("offset"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// showCmd creates the show command.
func showCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a protein's sequence and annotations",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("a protein ID is required"))
			}

			output, err := ops.Fetch(c.Context, db, ops.FetchInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// annotateCmd creates the annotate command.
func annotateCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "annotate",
		Usage:     "Add a colored label to a residue range",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "start", Aliases: []string{"s"}, Required: true, Usage: "First residue of the range (zero-based)"},
			&cli.IntFlag{Name: "end", Aliases: []string{"e"}, Required: true, Usage: "Last residue of the range (inclusive)"},
			&cli.StringFlag{Name: "label", Aliases: []string{"l"}, Usage: "Free-text label"},
			&cli.StringFlag{Name: "color", Aliases: []string{"c"}, Required: true, Usage: "CSS color, e.g. #ff0000"},
			&cli.StringFlag{Name: "server", Usage: "Submit to a running server instead of the local database, e.g. http://localhost:8700"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("a protein ID is required"))
			}
			id := c.Args().First()

			// Remote mode: post to a running server's annotation endpoint
			if server := c.String("server"); server != "" {
				store := client.New(server)
				record := protein.Annotation{
					ProteinID:  id,
					StartIndex: c.Int("start"),
					EndIndex:   c.Int("end"),
					Label:      c.String("label"),
					Color:      c.String("color"),
				}
				if err := store.Create(c.Context, record); err != nil {
					return outputError(err)
				}
				return outputJSON(map[string]any{"status": "ok"})
			}

			output, err := ops.AddAnnotation(c.Context, db, ops.AddAnnotationInput{
				ProteinID:  id,
				StartIndex: c.Int("start"),
				EndIndex:   c.Int("end"),
				Label:      c.String("label"),
				Color:      c.String("color"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// annotationsCmd creates the annotations command.
func annotationsCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "annotations",
		Usage:     "List a protein's annotations in insertion order",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("a protein ID is required"))
			}

			output, err := ops.ListAnnotations(c.Context, db, ops.ListAnnotationsInput{ProteinID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if vErr, ok := err.(*errors.ViewerError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", vErr.Code, vErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
