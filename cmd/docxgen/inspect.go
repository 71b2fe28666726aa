package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-docxgen/pkg/docxgen"
)

func newInspectCommand() *cobra.Command {
	var showXML bool

	cmd := &cobra.Command{
		Use:   "inspect <file.docx>",
		Short: "List the entries of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg, err := docxgen.OpenPackage(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if showXML {
				data, err := pkg.DocumentXML()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ENTRY\tMETHOD\tSIZE\tCOMPRESSED")
			for _, e := range pkg.Entries() {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", e.Name, methodName(e.Method), e.Size, e.CompressedSize)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&showXML, "xml", false, "print word/document.xml instead")
	return cmd
}

func methodName(m uint16) string {
	switch m {
	case zip.Store:
		return "store"
	case zip.Deflate:
		return "deflate"
	}
	return fmt.Sprintf("method %d", m)
}
