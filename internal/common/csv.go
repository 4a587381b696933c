// Package common provides shared output helpers used by the commands.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/camt-json/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Global CSV delimiter - configurable via the csv.delimiter config key
var delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	delimiter = delim
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return // Don't change the logger if nil is passed
	}
	log = logger
}

// FlattenMessages turns the parsed message tree into one CSV row per
// transaction, keeping statements and transactions in document order.
// Row-level party fields come from the first transaction detail; camt
// exports rarely carry more than one detail per entry, and consumers
// that need all of them use the JSON tree.
func FlattenMessages(messages []models.Message) []models.ExportRow {
	var rows []models.ExportRow

	for _, message := range messages {
		for _, statement := range message.Statements {
			for _, transaction := range statement.Transactions {
				row := models.ExportRow{
					MessageID:     message.MsgID,
					StatementID:   statement.ID,
					Account:       statement.LocalAccount,
					ExecutionDate: transaction.ExecutionDate,
					EffectiveDate: transaction.EffectiveDate,
					Amount:        transaction.TransferredAmount.Value,
					Currency:      transaction.TransferredAmount.Currency,
					Purpose:       transaction.Purpose,
				}
				if len(transaction.TransactionDetails) > 0 {
					detail := transaction.TransactionDetails[0]
					row.PartyName = detail.Party.RemoteOwner
					row.PartyAccount = detail.Party.RemoteAccount
					row.PartyBIC = detail.Party.RemoteBankBIC
					row.MandateID = detail.MandateID
				}
				rows = append(rows, row)
			}
		}
	}

	return rows
}

// WriteRowsToCSV writes export rows to a CSV file, creating the target
// directory when needed.
func WriteRowsToCSV(rows []models.ExportRow, csvFile string) error {
	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(rows),
	}).Info("Writing transactions to CSV file")

	if err := os.MkdirAll(filepath.Dir(csvFile), 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		writer := csv.NewWriter(out)
		writer.Comma = delimiter
		return gocsv.NewSafeCSVWriter(writer)
	})

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	return nil
}
