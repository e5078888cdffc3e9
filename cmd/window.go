package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kasuboski/pager/pkg/logger"
	"github.com/kasuboski/pager/pkg/pagination"
	"github.com/spf13/cobra"
)

var (
	windowPage       int
	windowTotalPages int
	windowSize       int
)

// windowCmd prints the page numbers a pagination control would show
var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "print the page number window",
	Long:  `print the page numbers shown around the current page, e.g. "< 3 4 [5] 6 7 >"`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		_, p, err := loadConfig()
		if err != nil {
			log.Fatal(err)
		}

		var pages []int
		if cmd.Flags().Changed("size") {
			pages = pagination.Window(windowPage, windowTotalPages, windowSize)
		} else {
			pages = p.Window(windowPage, windowTotalPages)
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderWindow(pages, windowPage, windowTotalPages))
	},
}

// renderWindow draws pages as a text control, bracketing the current page and
// marking elided pages on either side
func renderWindow(pages []int, current, totalPages int) string {
	if len(pages) == 0 {
		return "(no pages)"
	}

	parts := make([]string, 0, len(pages)+4)
	if current > 1 {
		parts = append(parts, "<")
	}
	if pages[0] > 1 {
		parts = append(parts, "…")
	}
	for _, p := range pages {
		if p == current {
			parts = append(parts, "["+strconv.Itoa(p)+"]")
			continue
		}
		parts = append(parts, strconv.Itoa(p))
	}
	if pages[len(pages)-1] < totalPages {
		parts = append(parts, "…")
	}
	if current < totalPages {
		parts = append(parts, ">")
	}

	return strings.Join(parts, " ")
}

func init() {
	windowCmd.Flags().IntVar(&windowPage, "page", 1, "current page")
	windowCmd.Flags().IntVar(&windowTotalPages, "total-pages", 0, "total number of pages")
	windowCmd.Flags().IntVar(&windowSize, "size", pagination.DefaultWindow, "number of page links to show; overrides pagination.windowSize")
	rootCmd.AddCommand(windowCmd)
}
