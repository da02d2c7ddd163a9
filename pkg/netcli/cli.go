package netcli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/transitnet/pkg/config"
	"github.com/travigo/transitnet/pkg/docstore"
	"github.com/travigo/transitnet/pkg/netformat"
	"github.com/travigo/transitnet/pkg/network"
	"github.com/urfave/cli/v2"
)

var ErrInvalidDocuments = errors.New("invalid network documents")

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "network",
		Usage: "Validate, convert and store transit network documents",
		Subcommands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "check that network documents decode",
				ArgsUsage: "FILE...",
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					if c.NArg() == 0 {
						return errors.New("no files given")
					}

					return validateFiles(c.App.Writer, c.Args().Slice(), cfg.Validate.Workers)
				},
			},
			{
				Name:  "convert",
				Usage: "rewrite a network document in canonical form",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "in",
						Usage:    "document to read",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "document to write, standard output when empty",
					},
				},
				Action: func(c *cli.Context) error {
					n, err := docstore.LoadFile(c.String("in"))
					if err != nil {
						return err
					}

					return writeNetwork(c, n)
				},
			},
			{
				Name:      "inspect",
				Usage:     "summarise a network document",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					n, err := docstore.LoadFile(c.Args().First())
					if err != nil {
						return err
					}

					inspect(c.App.Writer, n)

					return nil
				},
			},
			{
				Name:      "export",
				Usage:     "export the stops, routes or vehicles of a network document as CSV",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "kind",
						Value: "stops",
						Usage: "records to export: stops, routes or vehicles",
					},
				},
				Action: func(c *cli.Context) error {
					n, err := docstore.LoadFile(c.Args().First())
					if err != nil {
						return err
					}

					return export(c.App.Writer, n, c.String("kind"))
				},
			},
			{
				Name:      "push",
				Usage:     "validate a network document and save it to the configured store",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "key",
						Usage:    "key to store the document under",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					n, err := docstore.LoadFile(c.Args().First())
					if err != nil {
						return err
					}

					store, closeStore, err := openStore(c.Context, cfg.Store)
					if err != nil {
						return err
					}
					defer closeStore()

					if err := docstore.Save(c.Context, store, c.String("key"), n); err != nil {
						return err
					}

					log.Info().Str("store", store.Name()).Str("key", c.String("key")).Msg("Pushed network")

					return nil
				},
			},
			{
				Name:  "pull",
				Usage: "load a network document from the configured store",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "key",
						Usage:    "key the document is stored under",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "document to write, standard output when empty",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					store, closeStore, err := openStore(c.Context, cfg.Store)
					if err != nil {
						return err
					}
					defer closeStore()

					n, err := docstore.Load(c.Context, store, c.String("key"))
					if err != nil {
						return err
					}

					return writeNetwork(c, n)
				},
			},
		},
	}
}

func writeNetwork(c *cli.Context, n *network.Network) error {
	if out := c.String("out"); out != "" {
		return docstore.SaveFile(out, n)
	}

	return netformat.Encode(c.App.Writer, n)
}

type validationResult struct {
	position int
	path     string
	err      error
}

// validateFiles decodes every file on a bounded pool and reports the results
// in argument order.
func validateFiles(writer io.Writer, paths []string, workers int) error {
	p := pool.NewWithResults[validationResult]().WithMaxGoroutines(workers)

	for position, path := range paths {
		position := position
		path := path

		p.Go(func() validationResult {
			_, err := docstore.LoadFile(path)
			return validationResult{position: position, path: path, err: err}
		})
	}

	results := p.Wait()
	sort.Slice(results, func(i, j int) bool {
		return results[i].position < results[j].position
	})

	failed := 0
	for _, result := range results {
		if result.err != nil {
			failed++
			fmt.Fprintf(writer, "%s: %v\n", result.path, result.err)
			continue
		}
		fmt.Fprintf(writer, "%s: ok\n", result.path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(paths), ErrInvalidDocuments)
	}

	return nil
}

func inspect(writer io.Writer, n *network.Network) {
	fmt.Fprintf(writer, "stops: %d\n", len(n.Stops()))
	fmt.Fprintf(writer, "routes: %d\n", len(n.Routes()))
	fmt.Fprintf(writer, "vehicles: %d\n", len(n.Vehicles()))

	for _, route := range n.Routes() {
		var names []string
		for _, stop := range route.Stops() {
			names = append(names, n.Stop(stop).Name())
		}

		fmt.Fprintf(writer, "%s: %s (vehicles: %d)\n", route, strings.Join(names, " > "), len(route.Vehicles()))
	}
}
