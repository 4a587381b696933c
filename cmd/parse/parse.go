// Package parse handles the camt.053 to JSON conversion command
package parse

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"fjacquet/camt-json/cmd/root"
	"fjacquet/camt-json/internal/camtparser"
	"fjacquet/camt-json/internal/parsererror"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	outputFile string
	format     string
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a camt.053 XML file into structured JSON",
	Long: `Parse a camt.053 XML file into messages, statements and transactions
and print the result to stdout (or write it to a file) as indented
JSON or as YAML.`,
	Args: cobra.ExactArgs(1),
	Run:  parseFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the result to a file instead of stdout")
	Cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
}

func parseFunc(cmd *cobra.Command, args []string) {
	root.Log.Infof("Input camt.053 file: %s", args[0])

	if err := run(args[0], format, outputFile, os.Stdout); err != nil {
		root.Log.Fatalf("Error converting camt.053 file: %v", err)
	}
	root.Log.Info("camt.053 conversion completed successfully!")
}

// run parses the input file and writes the serialized messages to out,
// or to outputFile when set. Nothing at all is written when any part of
// the parse fails.
func run(inputFile, format, outputFile string, out io.Writer) error {
	p := camtparser.New(root.Log)
	if root.Cfg != nil {
		p.SetStrictValidation(root.Cfg.Parsers.CAMT.StrictValidation)
	}

	valid, err := p.ValidateFormat(inputFile)
	if err != nil {
		return err
	}
	if !valid {
		return &parsererror.ValidationError{FilePath: inputFile, Reason: "not a camt.053 document"}
	}

	messages, err := p.ParseFile(inputFile)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "yaml":
		data, err = yaml.Marshal(messages)
	default:
		data, err = json.MarshalIndent(messages, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to serialize messages: %w", err)
	}

	if outputFile != "" {
		return os.WriteFile(outputFile, data, 0600)
	}

	_, err = fmt.Fprintf(out, "messages= %s\n", data)
	return err
}
