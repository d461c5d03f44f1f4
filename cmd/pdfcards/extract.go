package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func extractCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file.pdf>",
		Short: "Print the text extracted from a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cmd.Context(), cmd, opts)
			if err != nil {
				return err
			}

			filename, data, err := readPDF(args[0])
			if err != nil {
				return err
			}

			doc, err := svc.ExtractText(cmd.Context(), filename, data)
			if err != nil {
				return fmt.Errorf("failed to extract text: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), doc.Text)
			return nil
		},
	}
}
