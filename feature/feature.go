package feature

import "fmt"

/*
Feature represents a named column of a tabular record set.
*/
type Feature interface {
	Name() string
	Valid(interface{}) (bool, error)
}

/*
CategoricalFeature represents a column whose raw values are strings taken
from a finite set and that is encoded to dense integer codes.

A categorical feature may carry a canonical value order: a fixed literal
list of values that determines the code assigned to each value regardless
of the order or frequency in which values appear in the data. Without a
canonical order, codes are assigned by sorting the distinct raw values.
*/
type CategoricalFeature struct {
	name           string
	canonicalOrder []string
}

/*
ContinuousFeature represents a column whose values are numeric and that is
rescaled rather than encoded.
*/
type ContinuousFeature struct {
	name string
}

/*
LabelFeature represents the target column of a record set. Its domain is
exactly two string values: the positive value encodes to 1 and the
negative value encodes to 0.
*/
type LabelFeature struct {
	name     string
	positive string
	negative string
}

/*
NewCategoricalFeature takes a name string and returns a categorical
feature whose codes will be assigned by sorting its distinct raw values.
*/
func NewCategoricalFeature(name string) *CategoricalFeature {
	return &CategoricalFeature{name: name}
}

/*
NewCanonicalCategoricalFeature takes a name string and a slice with the
fixed value order for the feature and returns a categorical feature whose
codes follow that order: the i-th value of the slice encodes to code i.
*/
func NewCanonicalCategoricalFeature(name string, order []string) *CategoricalFeature {
	return &CategoricalFeature{name: name, canonicalOrder: order}
}

/*
NewContinuousFeature takes a name string and returns a continuous feature
with the given name.
*/
func NewContinuousFeature(name string) *ContinuousFeature {
	return &ContinuousFeature{name}
}

/*
NewLabelFeature takes a name string and the positive and negative values
of the label's two-value domain and returns a label feature.
*/
func NewLabelFeature(name, positive, negative string) *LabelFeature {
	return &LabelFeature{name, positive, negative}
}

/*
Name returns a string with the name of the feature
*/
func (cf *CategoricalFeature) Name() string {
	return cf.name
}

/*
Valid receives an interface value and returns a boolean and an error. When
the value parameter is a string the method returns true and nil, otherwise
false and an error describing the reason. Membership in the fitted value
domain is checked when encoding, not here.
*/
func (cf *CategoricalFeature) Valid(value interface{}) (bool, error) {
	_, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("categorical feature %s expects string value, got %T value", cf.Name(), value)
	}
	return true, nil
}

/*
CanonicalOrder returns the fixed value order for the feature, or nil when
codes are to be assigned by sorting the distinct raw values.
*/
func (cf *CategoricalFeature) CanonicalOrder() []string {
	return cf.canonicalOrder
}

func (cf *CategoricalFeature) String() string {
	return cf.name
}

/*
Name returns a string with the name of the feature
*/
func (cf *ContinuousFeature) Name() string {
	return cf.name
}

/*
Valid receives an interface value and returns a boolean and an error. When
the value parameter is a float64 it returns true and nil, otherwise it
returns false and an error describing the reason.
*/
func (cf *ContinuousFeature) Valid(value interface{}) (bool, error) {
	_, ok := value.(float64)
	if !ok {
		return false, fmt.Errorf("continuous feature %s expects float64 value, got %T value", cf.Name(), value)
	}
	return true, nil
}

func (cf *ContinuousFeature) String() string {
	return cf.name
}

/*
Name returns a string with the name of the feature
*/
func (lf *LabelFeature) Name() string {
	return lf.name
}

/*
Valid receives an interface value and returns a boolean and an error. When
the value parameter is a string the method returns true and nil, otherwise
false and an error describing the reason. Membership in the two-value
domain is checked when encoding, not here.
*/
func (lf *LabelFeature) Valid(value interface{}) (bool, error) {
	_, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("label feature %s expects string value, got %T value", lf.Name(), value)
	}
	return true, nil
}

/*
Positive returns the raw value of the label that encodes to 1.
*/
func (lf *LabelFeature) Positive() string {
	return lf.positive
}

/*
Negative returns the raw value of the label that encodes to 0.
*/
func (lf *LabelFeature) Negative() string {
	return lf.negative
}

func (lf *LabelFeature) String() string {
	return lf.name
}
