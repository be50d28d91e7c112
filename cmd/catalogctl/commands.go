// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taibuivan/super3000/internal/catalog"
	"github.com/taibuivan/super3000/internal/core/contact"
	"github.com/taibuivan/super3000/internal/core/products"
	"github.com/taibuivan/super3000/internal/core/site"
	"github.com/taibuivan/super3000/internal/facet"
	"github.com/taibuivan/super3000/internal/filter"
)

// SourceCLI labels filter evaluations made from the command line.
const SourceCLI = "cli"

func (a *app) loadIndex(cmd *cobra.Command) (*catalog.Index, error) {
	index, err := catalog.Load(cmd.Context(), catalog.NewFileSource(a.dir))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("catalog_loaded", "dir", a.dir, "products", index.Len())
	return index, nil
}

func (a *app) productService(index *catalog.Index) *products.Service {
	return products.NewService(index, contact.NewService(a.cfg.WhatsAppNumber, a.logger), a.logger)
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(value)
}

// # filter

func newFilterCmd(a *app) *cobra.Command {
	var (
		state  facet.State
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List the products matching a facet selection",
		Example: `  catalogctl filter --make Kia --model Rio --year 2013
  catalogctl filter -q oil --origin Korean --locale en --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			index, err := a.loadIndex(cmd)
			if err != nil {
				return err
			}

			listing := a.productService(index).Browse(cmd.Context(), state, a.Locale(), SourceCLI)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), listing)
			}
			return printListing(cmd.OutOrStdout(), listing)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&state.Search, "query", "q", "", "Name search in the output locale")
	flags.StringVar(&state.CategoryID, "category", "", "Category id")
	flags.StringVar(&state.Origin, "origin", "", "Variant origin")
	flags.StringVar(&state.Make, "make", "", "Car make")
	flags.StringVar(&state.Model, "model", "", "Car model")
	flags.StringVar(&state.Year, "year", "", "Model year")
	flags.BoolVar(&asJSON, "json", false, "Print the full listing as JSON")

	return cmd
}

func printListing(out io.Writer, listing products.Listing) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tCATEGORY\tORIGINS")
	for _, card := range listing.Items {
		origins := make([]string, 0, len(card.Variants))
		for _, variant := range card.Variants {
			origins = append(origins, variant.OriginLabel)
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", card.ID, card.Name, card.Category.Name, strings.Join(origins, ", "))
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	if listing.Total == 0 && listing.Active {
		_, err := fmt.Fprintln(out, "no products match the selection")
		return err
	}
	_, err := fmt.Fprintf(out, "%d product(s)\n", listing.Total)
	return err
}

// # options

func newOptionsCmd(a *app) *cobra.Command {
	var state facet.State

	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print selector contents for a selection as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			index, err := a.loadIndex(cmd)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), filter.BuildOptions(index, state, a.Locale()))
		},
	}

	cmd.Flags().StringVar(&state.Make, "make", "", "Car make")
	cmd.Flags().StringVar(&state.Model, "model", "", "Car model")

	return cmd
}

// # link

func newLinkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "link <product-id>",
		Short: "Print the WhatsApp request link of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := a.loadIndex(cmd)
			if err != nil {
				return err
			}

			detail, err := a.productService(index).Get(args[0], a.Locale())
			if err != nil {
				return fmt.Errorf("product %q: %w", args[0], err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), detail.InquiryURL)
			return err
		},
	}
}

// # sitemap

func newSitemapCmd(a *app) *cobra.Command {
	var siteURL string

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Render sitemap.xml to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			index, err := a.loadIndex(cmd)
			if err != nil {
				return err
			}
			if siteURL == "" {
				siteURL = a.cfg.SiteURL
			}

			document, err := site.NewService(index, siteURL, a.cfg.WhatsAppNumber).Render()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(document, '\n'))
			return err
		},
	}

	cmd.Flags().StringVar(&siteURL, "site-url", "", "Public site URL (default $SITE_URL)")

	return cmd
}
