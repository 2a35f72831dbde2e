package entities

import "fmt"

// Hidden value bounds
const (
	HiddenValueMin   = 0
	HiddenValueMax   = 31
	HiddenValueCount = 6
	hiddenValueBits  = 5
	hiddenValueMask  = 1<<hiddenValueBits - 1
)

// Stat indexes into HiddenValues
const (
	StatHP = iota
	StatAttack
	StatDefense
	StatSpecialAttack
	StatSpecialDefense
	StatSpeed
)

// HiddenValues are the six per-stat hidden values of a creature, in the
// order HP, Attack, Defense, Special Attack, Special Defense, Speed.
type HiddenValues [HiddenValueCount]int

// Grade is the quality label derived from the hidden value total
type Grade string

// Grades
const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// Grade thresholds on the hidden value total
const (
	GradeSThreshold = 156
	GradeAThreshold = 124
	GradeBThreshold = 93
	GradeCThreshold = 62
)

// Sum returns the total of all six values, in [0, 186]
func (h HiddenValues) Sum() int {
	total := 0
	for _, v := range h {
		total += v
	}
	return total
}

// Grade returns the quality grade for the total
func (h HiddenValues) Grade() Grade {
	return GradeForTotal(h.Sum())
}

// PerfectCount returns how many values are 31
func (h HiddenValues) PerfectCount() int {
	n := 0
	for _, v := range h {
		if v == HiddenValueMax {
			n++
		}
	}
	return n
}

// Validate checks that every value is within [0, 31]
func (h HiddenValues) Validate() error {
	for i, v := range h {
		if v < HiddenValueMin || v > HiddenValueMax {
			return fmt.Errorf("hidden value %d out of range: %d", i, v)
		}
	}
	return nil
}

// Pack encodes the values into 30 bits, five per stat, HP in the low bits.
// Values must already be valid.
func (h HiddenValues) Pack() uint32 {
	var packed uint32
	for i, v := range h {
		packed |= uint32(v&hiddenValueMask) << (hiddenValueBits * i)
	}
	return packed
}

// UnpackHiddenValues decodes the form produced by Pack
func UnpackHiddenValues(packed uint32) (HiddenValues, error) {
	if packed>>(hiddenValueBits*HiddenValueCount) != 0 {
		return HiddenValues{}, fmt.Errorf("packed hidden values use more than %d bits", hiddenValueBits*HiddenValueCount)
	}
	var h HiddenValues
	for i := range h {
		h[i] = int(packed>>(hiddenValueBits*i)) & hiddenValueMask
	}
	return h, nil
}

// GradeForTotal maps a hidden value total onto a grade
func GradeForTotal(total int) Grade {
	switch {
	case total >= GradeSThreshold:
		return GradeS
	case total >= GradeAThreshold:
		return GradeA
	case total >= GradeBThreshold:
		return GradeB
	case total >= GradeCThreshold:
		return GradeC
	default:
		return GradeD
	}
}
