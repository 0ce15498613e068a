// Package report renders the symbol frequency table of an input together
// with the Huffman codeword assigned to each symbol.
package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	json "github.com/json-iterator/go"

	"github.com/marcosfnsc/impl-huffman/huffman"
)

// Row describes one symbol of the input.
type Row struct {
	Symbol   byte    `json:"symbol"`
	Label    string  `json:"label"`
	Count    uint64  `json:"count"`
	Relative float64 `json:"relative"`
	Binary   string  `json:"binary"`
	Codeword string  `json:"codeword"`
}

// Report is the analysis of one input.
type Report struct {
	Total         uint64  `json:"total"`
	Distinct      int     `json:"distinct"`
	AverageLength float64 `json:"average_length"` // Codeword bits per symbol, weighted
	Entropy       float64 `json:"entropy"`        // Lower bound in bits per symbol
	Rows          []Row   `json:"symbols"`
}

// Analyze builds the report for data. Empty data yields an empty report.
func Analyze(data []byte) (*Report, error) {
	ft := huffman.Analyze(data)
	if ft.Len() == 0 {
		return &Report{Rows: []Row{}}, nil
	}

	tree, err := huffman.BuildTree(ft)
	if err != nil {
		return nil, err
	}
	return FromTable(ft, tree)
}

// FromTable builds the report for a frequency table and the tree built from it.
// Rows follow the table's ascending symbol order.
func FromTable(ft *huffman.FrequencyTable, tree huffman.Node) (*Report, error) {
	r := &Report{
		Total:    ft.Total(),
		Distinct: ft.Len(),
		Rows:     make([]Row, 0, ft.Len()),
	}

	var weightedBits float64
	for _, e := range ft.Entries() {
		code, err := huffman.Generate(e.Symbol, tree)
		if err != nil {
			return nil, err
		}

		p := float64(e.Count) / float64(r.Total)
		weightedBits += p * float64(len(code))
		r.Entropy -= p * math.Log2(p)

		binary := huffman.ByteToBits(e.Symbol)
		r.Rows = append(r.Rows, Row{
			Symbol:   e.Symbol,
			Label:    Label(e.Symbol),
			Count:    e.Count,
			Relative: p,
			Binary:   huffman.Bits(binary[:]).String(),
			Codeword: code.String(),
		})
	}
	r.AverageLength = weightedBits

	return r, nil
}

// Label returns a printable name for sym.
func Label(sym byte) string {
	switch sym {
	case 0:
		return "NULL"
	case 8:
		return "BACKSPACE"
	case 9:
		return "TAB"
	case 10:
		return `\n`
	case 11:
		return "VTAB"
	case 13:
		return `\r`
	case 27:
		return "ESC"
	case 32:
		return "SPACE"
	case 127:
		return "DEL"
	}
	if sym > 32 && sym < 127 {
		return string(rune(sym))
	}
	return fmt.Sprintf("0x%02X", sym)
}

// WriteTable writes r as an aligned text table followed by a summary.
func WriteTable(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "Symbol\tCount\tRelative\tCode\tBinary\tHuffman")
	for _, row := range r.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%d\t%s\t%s\n",
			row.Label, row.Count, row.Relative, row.Symbol, row.Binary, row.Codeword)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nSymbols: %d (%d distinct)\nAverage: %.4f bits/symbol\nEntropy: %.4f bits/symbol\n",
		r.Total, r.Distinct, r.AverageLength, r.Entropy)
	return err
}

// Marshal encodes r as indented JSON.
func Marshal(r *Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// WriteJSON writes r as indented JSON followed by a newline.
func WriteJSON(w io.Writer, r *Report) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
