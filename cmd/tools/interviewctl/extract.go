package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xilidan/interview/pkg/extract"
	"github.com/xilidan/interview/services/interview/usecase"
)

type extractOutput struct {
	Mode         string            `json:"mode" yaml:"mode"`
	Success      bool              `json:"success" yaml:"success"`
	FallbackUsed bool              `json:"fallback_used" yaml:"fallback_used"`
	Fields       map[string]string `json:"fields,omitempty" yaml:"fields,omitempty"`
	Items        []string          `json:"items,omitempty" yaml:"items,omitempty"`
	Object       map[string]any    `json:"object,omitempty" yaml:"object,omitempty"`
	Missing      []string          `json:"missing,omitempty" yaml:"missing,omitempty"`
}

func newExtractCmd(root *rootOptions) *cobra.Command {
	var (
		mode     string
		sections []string
		report   bool
	)

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract structured data from a model reply",
		Long: `Reads a model reply from file (or stdin when omitted or "-") and prints
what the extractor recovers from it.

  interviewctl extract --report reply.txt
  interviewctl extract --mode array < questions.txt
  interviewctl extract --section score=SCORE: --section notes=NOTES: reply.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			req := extract.Request{Text: text}
			switch {
			case report:
				req.Mode = extract.DelimitedSections
				req.Sections = usecase.ReportSections
			default:
				if req.Mode, err = extract.ParseMode(mode); err != nil {
					return err
				}
				if req.Sections, err = parseSections(sections); err != nil {
					return err
				}
			}

			res, err := extract.Extract(req)
			if err != nil {
				return err
			}
			return root.print(cmd.OutOrStdout(), extractOutput{
				Mode:         res.Mode.String(),
				Success:      res.Success,
				FallbackUsed: res.FallbackUsed,
				Fields:       res.Fields,
				Items:        res.Items,
				Object:       res.Object,
				Missing:      res.Missing,
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "sections", "extraction mode: sections, array or object")
	cmd.Flags().StringArrayVar(&sections, "section", nil, "section as field=LABEL, repeatable")
	cmd.Flags().BoolVar(&report, "report", false, "use the interview report sections")
	cmd.MarkFlagsMutuallyExclusive("report", "mode")
	cmd.MarkFlagsMutuallyExclusive("report", "section")

	return cmd
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(b), nil
}

func parseSections(raw []string) ([]extract.Section, error) {
	sections := make([]extract.Section, 0, len(raw))
	for _, s := range raw {
		field, label, ok := strings.Cut(s, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" || label == "" {
			return nil, fmt.Errorf("invalid section %q, want field=LABEL", s)
		}
		sections = append(sections, extract.Section{Field: field, Label: label})
	}
	return sections, nil
}
