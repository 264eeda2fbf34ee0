package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

const internValue = "intern"

var (
	minimumAllocation = decimal.NewFromFloat(0.1)
	maximumAllocation = decimal.NewFromInt(1)
)

// editableAllocations are the values an existing allocation can be changed to.
var editableAllocations = []decimal.Decimal{
	decimal.RequireFromString("0.10"),
	decimal.RequireFromString("0.20"),
	decimal.RequireFromString("0.25"),
	decimal.RequireFromString("0.30"),
	decimal.RequireFromString("0.40"),
	decimal.RequireFromString("0.50"),
	decimal.RequireFromString("0.60"),
	decimal.RequireFromString("0.70"),
	decimal.RequireFromString("0.75"),
	decimal.RequireFromString("0.80"),
	decimal.RequireFromString("0.90"),
	decimal.RequireFromString("1.00"),
}

// AllocationValue is either a numeric fraction of a full time position
// or the intern marker. Interns never count towards a commitment.
type AllocationValue struct {
	intern bool
	ratio  decimal.Decimal
}

// Intern is the allocation value for interns.
var Intern = AllocationValue{intern: true}

// NumericAllocation returns a numeric allocation value.
func NumericAllocation(d decimal.Decimal) AllocationValue {
	return AllocationValue{ratio: d}
}

// IsIntern reports if the value is the intern marker.
func (v AllocationValue) IsIntern() bool {
	return v.intern
}

// Decimal returns the numeric value. It is zero for interns.
func (v AllocationValue) Decimal() decimal.Decimal {
	if v.intern {
		return decimal.Zero
	}
	return v.ratio
}

func (v AllocationValue) String() string {
	if v.intern {
		return internValue
	}
	return v.ratio.StringFixed(2)
}

// MarshalJSON renders the value as string, e.g. "0.50" or "intern".
func (v AllocationValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON accepts strings and JSON numbers.
//
// It does not apply any policy, this is done by ParseAssignValue and ParseEditValue.
func (v *AllocationValue) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}

	var s string
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAllocationValue, err)
		}
	} else {
		s = raw
	}

	parsed, err := ParseAllocationValue(s)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}

// Scan implements the sql.Scanner interface.
func (v *AllocationValue) Scan(value any) error {
	var s string
	switch t := value.(type) {
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		return fmt.Errorf("cannot scan %T into an allocation value", value)
	}

	parsed, err := ParseAllocationValue(s)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}

// Value implements the driver.Valuer interface.
func (v AllocationValue) Value() (driver.Value, error) {
	return v.String(), nil
}

// GormDataType defines the data type used by gorm for the type.
func (AllocationValue) GormDataType() string {
	return "text"
}

// ParseAllocationValue parses "intern" (case insensitive) or a decimal number.
func ParseAllocationValue(s string) (AllocationValue, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, internValue) {
		return Intern, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return AllocationValue{}, fmt.Errorf("%w: '%s' is neither a number nor 'intern'", ErrInvalidAllocationValue, s)
	}

	return NumericAllocation(d), nil
}

// ParseAssignValue applies the policy for new allocations: numeric values
// are rounded to two decimal places and must be between 0.10 and 1.00.
func ParseAssignValue(s string) (AllocationValue, error) {
	v, err := ParseAllocationValue(s)
	if err != nil {
		return AllocationValue{}, err
	}

	return v.assignable()
}

func (v AllocationValue) assignable() (AllocationValue, error) {
	if v.intern {
		return v, nil
	}

	rounded := v.ratio.Round(2)
	if rounded.LessThan(minimumAllocation) || rounded.GreaterThan(maximumAllocation) {
		return AllocationValue{}, fmt.Errorf("%w: %s is not between 0.10 and 1.00", ErrInvalidAllocationValue, rounded.StringFixed(2))
	}

	return NumericAllocation(rounded), nil
}

// ParseEditValue applies the policy for changing allocations: the value
// must be one of the editable allocations or "intern". No rounding is applied.
func ParseEditValue(s string) (AllocationValue, error) {
	v, err := ParseAllocationValue(s)
	if err != nil {
		return AllocationValue{}, err
	}

	return v.editable()
}

func (v AllocationValue) editable() (AllocationValue, error) {
	if v.intern {
		return v, nil
	}

	idx := slices.IndexFunc(editableAllocations, func(d decimal.Decimal) bool {
		return d.Equal(v.ratio)
	})
	if idx < 0 {
		return AllocationValue{}, fmt.Errorf("%w: %s is not one of 0.10, 0.20, 0.25, 0.30, 0.40, 0.50, 0.60, 0.70, 0.75, 0.80, 0.90, 1.00 or intern", ErrInvalidAllocationValue, v.ratio.String())
	}

	return NumericAllocation(editableAllocations[idx]), nil
}
