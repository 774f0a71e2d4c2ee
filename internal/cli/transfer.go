package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/localize-backend/internal/service/exporter"
	"github.com/heartmarshall/localize-backend/internal/service/importer"
)

func newImportCmd(e *env) *cobra.Command {
	var (
		language string
		format   string
		override bool
	)

	cmd := &cobra.Command{
		Use:   "import [project_id] [file]",
		Short: "Import a translation document into a project language",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}
			f, err := resolveFormat(format, args[1])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read document: %w", err)
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

			input := importer.Input{
				ProjectID:   projectID,
				LanguageTag: language,
				Format:      f,
				Data:        data,
			}
			if cmd.Flags().Changed("override") {
				input.Override = &override
			}
			out := cmd.OutOrStdout()
			if isTerminal(out) {
				input.Progress = func(done, total int) {
					fmt.Fprintf(out, "\r%s %d/%d", mutedStyle.Render("importing"), done, total)
				}
			}

			res, err := svc.Importer.Import(ctx, input)
			if input.Progress != nil {
				fmt.Fprintln(out)
			}
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			fmt.Fprintf(out, "%s %d entries into %s\n", okStyle.Render("✓ Imported"), res.Entries, language)
			if res.LanguageCreated {
				fmt.Fprintf(out, "  Language created (ID: %d)\n", res.LanguageID)
			}
			fmt.Fprintf(out, "  Keys created: %d\n", res.KeysCreated)
			fmt.Fprintf(out, "  Translated:   %d\n", res.Translated)
			fmt.Fprintf(out, "  Unchanged:    %d\n", res.Unchanged)
			fmt.Fprintf(out, "  Skipped:      %d\n", res.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "target language tag (BCP 47)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "document format: json or yaml (default: from file extension)")
	cmd.Flags().BoolVar(&override, "override", false, "replace existing texts")
	_ = cmd.MarkFlagRequired("language")

	return cmd
}

func newExportCmd(e *env) *cobra.Command {
	var (
		format string
		nested bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "export [project_id] [language_tag]",
		Short: "Export the translated texts of a project language",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}
			f, err := resolveFormat(format, output)
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

			doc, err := svc.Exporter.Export(ctx, exporter.Input{
				ProjectID:   projectID,
				LanguageTag: args[1],
				Format:      f,
				Nested:      nested,
			})
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(doc.Data)
				return err
			}
			if err := os.WriteFile(output, doc.Data, 0o644); err != nil {
				return fmt.Errorf("write document: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %d entries to %s\n", okStyle.Render("✓ Exported"), doc.Entries, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "document format: json or yaml (default: from output extension)")
	cmd.Flags().BoolVar(&nested, "nested", false, "split key names into nested objects")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func parseProjectID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid project ID %q", s)
	}
	return id, nil
}
