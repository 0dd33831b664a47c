package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/safety-audits/internal/domain"
	"github.com/heartmarshall/safety-audits/internal/service/audit"
)

func newSearchCmd(e *env) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search audits by auditor name, email or location",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")
			result, err := e.svc.SearchAudits(cmd.Context(), term)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}
			return printSummaries(cmd, result)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func printSummaries(cmd *cobra.Command, result []domain.AuditSummary) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tDATE\tAUDITOR\tLOCATION")
	for _, s := range result {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s <%s>\t%s\n",
			s.ID, s.Type, s.AuditDate.Format(time.DateOnly), s.AuditorName, s.AuditorEmail, s.LocationName)
	}
	return tw.Flush()
}

func newGetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print a stored audit with its details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid audit id %q: %w", args[0], err)
			}
			rec, err := e.svc.GetAudit(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rec)
		},
	}
}

func newSubmitCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <type> <file.json>",
		Short: "Validate and submit an audit form read from a JSON file",
		Args:  cobra.ExactArgs(2),

		ValidArgsFunction: completeAuditType,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(args[0], args[1])
			if err != nil {
				return err
			}
			id, err := e.svc.Submit(cmd.Context(), in)
			if err != nil {
				return describe(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func newProgressCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <type> <file.json>",
		Short: "Report how complete an audit form is",
		Args:  cobra.ExactArgs(2),

		ValidArgsFunction: completeAuditType,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(args[0], args[1])
			if err != nil {
				return err
			}
			p := e.svc.Progress(in)
			fmt.Fprintf(cmd.OutOrStdout(), "%d%% %s\n", p.Percent, p.CurrentSection)
			return nil
		},
	}
}

func newBucketCmd(e *env) *cobra.Command {
	bucket := &cobra.Command{
		Use:   "bucket",
		Short: "Manage the image bucket",
	}
	bucket.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the image bucket if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := e.backends.Store.EnsureBucket(cmd.Context())
			if err != nil {
				return err
			}
			state := "already exists"
			if created {
				state = "created"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "bucket %s %s\n", e.backends.Store.Bucket(), state)
			return nil
		},
	})
	return bucket
}

// readInput decodes a form file into the input type named by typ.
// completeAuditType offers audit types for the first argument and falls back
// to file completion for the form path.
func completeAuditType(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	types := domain.AllAuditTypes()
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, t.String())
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func readInput(typ, path string) (audit.Input, error) {
	in, err := audit.NewInput(domain.AuditType(strings.ToLower(typ)))
	if err != nil {
		return nil, describe(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, in); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return in, nil
}

// describe expands a validation error into one line per violated rule.
func describe(err error) error {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || len(verr.Errors) < 2 {
		return err
	}
	var b strings.Builder
	b.WriteString(verr.Message())
	for _, fe := range verr.Errors {
		fmt.Fprintf(&b, "\n  %s: %s", fe.Field, fe.Message)
	}
	return errors.New(b.String())
}
