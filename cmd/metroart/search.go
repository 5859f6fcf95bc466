package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/handiism/metroart/internal/browse"
)

var departmentsCmd = &cobra.Command{
	Use:   "departments",
	Short: "List the museum departments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		departments := current.browser().ListDepartments(cmd.Context())
		if len(departments) == 0 {
			return fmt.Errorf("no departments available")
		}
		printDepartments(current.out, departments)
		return nil
	},
}

var departmentCmd = &cobra.Command{
	Use:   "department <id>",
	Short: "List artworks of a department",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id < 1 {
			return fmt.Errorf("invalid department id %q", args[0])
		}
		result := current.browser().FetchArtworksByDepartment(cmd.Context(), id)
		return printPage(cmd, fmt.Sprintf("Departamento %d", id), result)
	},
}

var nationalityCmd = &cobra.Command{
	Use:   "nationality <text>",
	Short: "List artworks whose artist nationality contains text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		result := current.browser().FetchArtworksByNationality(cmd.Context(), text)
		return printPage(cmd, "Nacionalidad: "+text, result)
	},
}

var authorCmd = &cobra.Command{
	Use:   "author <name>",
	Short: "List artworks whose artist name contains name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		result := current.browser().FetchArtworksByAuthor(cmd.Context(), name)
		return printPage(cmd, "Autor: "+name, result)
	},
}

var nationalitiesCmd = &cobra.Command{
	Use:   "nationalities",
	Short: "List the nationality catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, _ := cmd.Flags().GetInt("page")
		catalog := current.browser().NationalityCatalog(nil)
		pager := browse.NewPager(len(catalog), current.settings.NationalityPageSize)
		pager, err := seek(pager, page)
		if err != nil {
			return err
		}
		printNationalities(current.out, catalog, pager)
		return nil
	},
}

var objectCmd = &cobra.Command{
	Use:   "object <id>",
	Short: "Show the details of an artwork",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id < 1 {
			return fmt.Errorf("invalid object id %q", args[0])
		}
		detail, ok := current.browser().FetchArtworkDetail(cmd.Context(), id)
		if !ok {
			return fmt.Errorf("object %d could not be fetched", id)
		}
		printDetail(current.out, detail)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(departmentsCmd, departmentCmd, nationalityCmd, authorCmd, nationalitiesCmd, objectCmd)
}

func printPage(cmd *cobra.Command, title string, result browse.Result) error {
	page, _ := cmd.Flags().GetInt("page")
	pager := browse.NewPager(len(result.Artworks), current.settings.ResultsPageSize)
	pager, err := seek(pager, page)
	if err != nil {
		return err
	}
	printResults(current.out, title, result, pager)
	return nil
}

// seek moves pager to the 1-based page. Any page is valid for an empty list.
func seek(pager browse.Pager, page int) (browse.Pager, error) {
	if page < 1 || (pager.Len > 0 && page > pager.Count()) {
		return pager, fmt.Errorf("page %d out of range (1-%d)", page, max(1, pager.Count()))
	}
	pager.Index = min(page-1, max(0, pager.Count()-1))
	return pager, nil
}
