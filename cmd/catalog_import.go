package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"storefront.GO/config"
	catalogEntity "storefront.GO/model/entity/catalog"
	catalogService "storefront.GO/service/catalog"
)

var (
	importFile  string
	importBatch int
)

var catalogImportCmd = &cobra.Command{
	Use:   "catalog:import",
	Short: "Import products from a JSON file into the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(importFile)
		if err != nil {
			fmt.Printf("Failed to open JSON: %v\n", err)
			return
		}
		defer f.Close()

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}
		if err := db.AutoMigrate(&catalogEntity.Product{}); err != nil {
			fmt.Printf("Migration failed: %v\n", err)
			return
		}

		res, err := catalogService.ImportJSON(db, f, importBatch)
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}

		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}
		fmt.Printf(`
=== Import Report ===
Rows:       %d
Imported:   %d
Skipped:    %d
Total time: %s
=====================
`, res.TotalRows, res.Imported, res.Skipped, res.TotalTime.Round(time.Millisecond))
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "catalog:list",
	Short: "List catalog products",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		var products []catalogEntity.Product
		if err := db.Order("position").Find(&products).Error; err != nil {
			fmt.Printf("Query failed: %v\n", err)
			return
		}
		for _, p := range products {
			stock := "in stock"
			if !p.InStock {
				stock = "out of stock"
			}
			fmt.Printf("%-4s %-28s %8.2f  %-12s %s\n", p.ID, p.Name, p.Price, p.Category, stock)
		}
		fmt.Printf("%d product(s)\n", len(products))
	},
}

func init() {
	catalogImportCmd.Flags().StringVarP(&importFile, "file", "f", "", "JSON file path (required)")
	catalogImportCmd.MarkFlagRequired("file")
	catalogImportCmd.Flags().IntVar(&importBatch, "batch-size", 100, "Batch size for DB operations")
	rootCmd.AddCommand(catalogImportCmd)
	rootCmd.AddCommand(catalogListCmd)
}
