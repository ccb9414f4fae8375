package problemgenerator

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

var csvHeader = []string{"index", "problem", "answer"}

// WriteCSV writes an answer key: one "index,problem,answer" row per problem.
// Problems without an answer get an empty answer column.
func WriteCSV(w io.Writer, problems []FormattedProblem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range problems {
		var answer string
		if p.Answer != nil {
			answer = p.Answer.String()
		}
		rec := []string{strconv.Itoa(p.Index), strings.TrimSpace(p.Text), answer}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
