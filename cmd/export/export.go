// Package export handles the camt.053 to CSV flattening command
package export

import (
	"strings"

	"fjacquet/camt-json/cmd/root"
	"fjacquet/camt-json/internal/camtparser"
	"fjacquet/camt-json/internal/common"

	"github.com/spf13/cobra"
)

var outputFile string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Flatten a camt.053 XML file into a CSV of transactions",
	Long: `Parse a camt.053 XML file and write one CSV row per transaction,
keeping statements and transactions in document order.`,
	Args: cobra.ExactArgs(1),
	Run:  exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output CSV file (defaults to the input name with a .csv extension)")
}

func exportFunc(cmd *cobra.Command, args []string) {
	inputFile := args[0]
	csvFile := outputFile
	if csvFile == "" {
		csvFile = strings.TrimSuffix(inputFile, ".xml") + ".csv"
	}

	root.Log.Infof("Input camt.053 file: %s", inputFile)
	root.Log.Infof("Output CSV file: %s", csvFile)

	p := camtparser.New(root.Log)
	if root.Cfg != nil {
		p.SetStrictValidation(root.Cfg.Parsers.CAMT.StrictValidation)
	}

	messages, err := p.ParseFile(inputFile)
	if err != nil {
		root.Log.Fatalf("Error parsing camt.053 file: %v", err)
	}

	rows := common.FlattenMessages(messages)
	if err := common.WriteRowsToCSV(rows, csvFile); err != nil {
		root.Log.Fatalf("Error writing CSV file: %v", err)
	}

	root.Log.Info("camt.053 to CSV export completed successfully!")
}
