package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	pipeline "github.com/heartmarshall/localize-backend/internal/activity"
	feed "github.com/heartmarshall/localize-backend/internal/service/activity"
	"github.com/heartmarshall/localize-backend/internal/transport/dataloader"
)

func newActivityCmd(e *env) *cobra.Command {
	var (
		page   int
		size   int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "activity [project_id]",
		Short: "Print the project activity feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}

			ctx, err := e.actorContext(cmd.Context())
			if err != nil {
				return err
			}
			svc, closeFn, err := e.services(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			result, err := svc.Activity.List(ctx, feed.ListInput{ProjectID: projectID, Page: page, Size: size})
			if err != nil {
				return fmt.Errorf("list activity: %w", err)
			}
			if err := dataloader.NewLoaders(svc.Loaders).FillLanguageRefs(ctx, result.Items); err != nil {
				e.log.WarnContext(ctx, "fill language refs", "error", err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result.Items)
			}
			printFeed(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "zero-based page number")
	cmd.Flags().IntVar(&size, "size", 0, "page size (default: configured)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print activities as JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "show [project_id] [revision_id]",
		Short: "Print one revision with all changed fields as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}
			revisionID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid revision ID %q", args[1])
			}

			ctx, err := e.actorContext(cmd.Context())
			if err != nil {
				return err
			}
			svc, closeFn, err := e.services(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			item, err := svc.Activity.Get(ctx, projectID, revisionID)
			if err != nil {
				return fmt.Errorf("get activity: %w", err)
			}
			items := []pipeline.Activity{*item}
			if err := dataloader.NewLoaders(svc.Loaders).FillLanguageRefs(ctx, items); err != nil {
				e.log.WarnContext(ctx, "fill language refs", "error", err)
			}
			return writeJSON(cmd.OutOrStdout(), items[0])
		},
	})

	return cmd
}

func printFeed(w io.Writer, p *feed.Page) {
	if len(p.Items) == 0 {
		fmt.Fprintln(w, "No activity found")
		return
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-8s %-17s %-22s %-8s %-24s %s",
		"REV", "TIME", "TYPE", "AUTHOR", "KEY", "CHANGES")))
	for _, a := range p.Items {
		fmt.Fprintf(w, "%-8d %-17s %s %-8s %-24s %s\n",
			a.RevisionID,
			time.UnixMilli(a.Timestamp).Local().Format("2006-01-02 15:04"),
			typeStyle.Render(fmt.Sprintf("%-22s", a.Type)),
			formatAuthor(a.AuthorID),
			truncate(a.Label, 24),
			formatCounts(a.Counts),
		)
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("page %d, %d of %d revisions", p.Page, len(p.Items), p.Total)))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
