// Package main provides inventoryctl, a terminal client for the inventory API.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ghuser/inventory/services/inventory/application/handlers"
)

const (
	Version        = "0.1.0"
	appName        = "inventoryctl"
	defaultBaseURL = "http://localhost:8080"
)

func main() {
	_ = godotenv.Load()
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Manage parts and products over the inventory API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultURL := os.Getenv("API_BASE_URL")
	if defaultURL == "" {
		defaultURL = defaultBaseURL
	}
	cmd.PersistentFlags().StringVar(&baseURL, "api", defaultURL, "Inventory API base URL (env API_BASE_URL)")

	client := func() *Client { return NewClient(baseURL) }
	cmd.AddCommand(partsCmd(client), productsCmd(client))

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func partsCmd(client func() *Client) *cobra.Command {
	cmd := &cobra.Command{Use: "parts", Short: "List and delete parts"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list [query]",
		Short: "List parts, optionally filtered by name or id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, err := client().ListParts(cmd.Context(), firstArg(args))
			if err != nil {
				return err
			}
			return printParts(cmd.OutOrStdout(), parts)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a part",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := client().DeletePart(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete part %d: %w", id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "part %d deleted\n", id)
			return nil
		},
	})

	return cmd
}

func productsCmd(client func() *Client) *cobra.Command {
	cmd := &cobra.Command{Use: "products", Short: "List and delete products"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list [query]",
		Short: "List products, optionally filtered by name or id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := client().ListProducts(cmd.Context(), firstArg(args))
			if err != nil {
				return err
			}
			return printProducts(cmd.OutOrStdout(), products)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product with no associated parts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := client().DeleteProduct(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete product %d: %w", id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "product %d deleted\n", id)
			return nil
		},
	})

	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", raw)
	}
	return id, nil
}

func printParts(w io.Writer, parts []handlers.PartResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTOCK\tMIN\tMAX\tPRICE\tSOURCE\tDETAIL")
	for _, p := range parts {
		detail := p.CompanyName
		if p.MachineID != nil {
			detail = strconv.Itoa(*p.MachineID)
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%.2f\t%s\t%s\n",
			p.ID, p.Name, p.Stock, p.Min, p.Max, p.Price, p.Source, detail)
	}
	return tw.Flush()
}

func printProducts(w io.Writer, products []handlers.ProductResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTOCK\tMIN\tMAX\tPRICE\tPARTS")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%.2f\t%d\n",
			p.ID, p.Name, p.Stock, p.Min, p.Max, p.Price, len(p.AssociatedParts))
	}
	return tw.Flush()
}
