package main

import (
	"encoding/json"
	"fmt"

	"github.com/phrazzld/pdfcards/internal/service"
	"github.com/spf13/cobra"
)

func generateCmd(opts *globalOptions) *cobra.Command {
	var numCards int

	cmd := &cobra.Command{
		Use:   "generate <file.pdf>",
		Short: "Generate flashcards from a PDF and print them as JSON",
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

			req := service.GenerateRequest{Filename: filename, Data: data}
			if cmd.Flags().Changed("num-cards") {
				req.NumCards = &numCards
			}

			result, err := svc.Generate(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to generate flashcards: %w", err)
			}

			b, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}

	cmd.Flags().IntVarP(&numCards, "num-cards", "n", 0, "number of flashcards to generate (default from config)")
	return cmd
}
