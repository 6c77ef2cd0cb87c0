package tabtransformer

import (
	"path/filepath"

	"github.com/youyoungjang/tab-transformer/feature"
)

const (
	// BankFile is the location of the bank marketing record set,
	// relative to the data root.
	BankFile = "bank/bank-full.csv"
	// BankSeparator is the field delimiter of the bank marketing file.
	BankSeparator = ';'
	// BankMonthField is the name of the calendar-month column.
	BankMonthField = "month"
)

// BankMonths is the fixed code order for the month column: the i-th
// month encodes to code i. The list has no entry for sep, so that value
// cannot be encoded.
var BankMonths = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "oct", "nov", "dec"}

// BankContinuous names the continuous columns of the bank marketing
// record set.
var BankContinuous = []string{"age", "balance", "day", "duration", "campaign", "pdays", "previous"}

/*
BankLabel returns the label feature of the bank marketing record set: the
y column, with yes encoding to 1 and no to 0.
*/
func BankLabel() *feature.LabelFeature {
	return feature.NewLabelFeature("y", "yes", "no")
}

/*
NewBankPipeline takes a data root path and an Observer and returns a
Pipeline configured for the bank marketing record set under the data
root.
*/
func NewBankPipeline(dataRoot string, observer Observer) *Pipeline {
	return &Pipeline{
		Path:       filepath.Join(dataRoot, BankFile),
		Separator:  BankSeparator,
		Continuous: BankContinuous,
		Label:      BankLabel(),
		Canonical:  map[string][]string{BankMonthField: BankMonths},
		Observer:   observer,
	}
}

/*
BankInfo returns a string describing where the bank marketing record set
comes from.
*/
func BankInfo() string {
	return "dataset url: https://archive.ics.uci.edu/ml/datasets/bank+marketing"
}
