package order

import (
	"errors"
	"fmt"
	"strings"

	"printz/internal/pkg/errs"
)

// PaperSize enumerates the paper formats a shop prices individually.
type PaperSize int

const (
	PaperSizeUnknown PaperSize = iota
	A1
	A2
	A3
	A4
	A5
	A6
)

func getPaperSizeStrings() map[PaperSize]string {
	return map[PaperSize]string{
		A1: "A1",
		A2: "A2",
		A3: "A3",
		A4: "A4",
		A5: "A5",
		A6: "A6",
	}
}

// AllPaperSizes returns every valid paper size in catalog order.
func AllPaperSizes() []PaperSize {
	return []PaperSize{A1, A2, A3, A4, A5, A6}
}

// PaperSizeFromString parses a paper size, accepting any letter case.
func PaperSizeFromString(s string) (PaperSize, error) {
	for size, str := range getPaperSizeStrings() {
		if strings.EqualFold(str, s) {
			return size, nil
		}
	}
	return PaperSizeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paperSize",
		fmt.Errorf("%q is not a valid paper size", s),
	)
}

// Validate checks if the PaperSize value is valid.
func (p PaperSize) Validate() error {
	if _, ok := getPaperSizeStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paperSize", fmt.Errorf("%d is not a valid paper size", p))
	}
	return nil
}

// String returns the paper size name, or "Unknown" for invalid values.
func (p PaperSize) String() string {
	if str, ok := getPaperSizeStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// ColorMode enumerates the two print color modes a shop prices individually.
type ColorMode int

const (
	ColorModeUnknown ColorMode = iota
	Grayscale
	Color
)

func getColorModeStrings() map[ColorMode]string {
	return map[ColorMode]string{
		Grayscale: "Grayscale",
		Color:     "Color",
	}
}

// AllColorModes returns both valid color modes.
func AllColorModes() []ColorMode {
	return []ColorMode{Grayscale, Color}
}

// ColorModeFromString parses a color mode, accepting any letter case.
func ColorModeFromString(s string) (ColorMode, error) {
	for mode, str := range getColorModeStrings() {
		if strings.EqualFold(str, s) {
			return mode, nil
		}
	}
	return ColorModeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"colorMode",
		fmt.Errorf("%q is not a valid color mode", s),
	)
}

// Validate checks if the ColorMode value is valid.
func (c ColorMode) Validate() error {
	if _, ok := getColorModeStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("colorMode", fmt.Errorf("%d is not a valid color mode", c))
	}
	return nil
}

// String returns the color mode name, or "Unknown" for invalid values.
func (c ColorMode) String() string {
	if str, ok := getColorModeStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// Orientation enumerates page orientations.
type Orientation int

const (
	OrientationUnknown Orientation = iota
	Portrait
	Landscape
)

func getOrientationStrings() map[Orientation]string {
	return map[Orientation]string{
		Portrait:  "Portrait",
		Landscape: "Landscape",
	}
}

// OrientationFromString parses an orientation, accepting any letter case.
func OrientationFromString(s string) (Orientation, error) {
	for o, str := range getOrientationStrings() {
		if strings.EqualFold(str, s) {
			return o, nil
		}
	}
	return OrientationUnknown, errs.NewValueIsInvalidErrorWithCause(
		"orientation",
		fmt.Errorf("%q is not a valid orientation", s),
	)
}

// Validate checks if the Orientation value is valid.
func (o Orientation) Validate() error {
	if _, ok := getOrientationStrings()[o]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orientation", fmt.Errorf("%d is not a valid orientation", o))
	}
	return nil
}

// String returns the orientation name, or "Unknown" for invalid values.
func (o Orientation) String() string {
	if str, ok := getOrientationStrings()[o]; ok {
		return str
	}
	return "Unknown"
}

// PrintSpec is the immutable description of what a student wants printed.
// It is captured verbatim at order creation and never changes afterwards.
//
// SpecificPages is a free-form page subset expression ("1-5,8") left empty
// when the whole document is printed. Documents holds references to the
// uploaded files; at least one is required.
type PrintSpec struct {
	Copies           int
	PaperSize        PaperSize
	ColorMode        ColorMode
	Orientation      Orientation
	PageCount        int
	SpecificPages    string
	Binding          bool
	FrontPageSpecial bool
	FrontAndBack     bool
	Documents        []string
	Comments         string
}

// Validate checks every required field of the print specification.
// All violations are joined so the caller sees the complete list at once.
func (s PrintSpec) Validate() error {
	var violations []error

	if s.Copies <= 0 {
		violations = append(violations, errs.NewValueIsInvalidErrorWithCause(
			"copies",
			fmt.Errorf("%d is not greater than 0", s.Copies),
		))
	}
	if s.PageCount <= 0 {
		violations = append(violations, errs.NewValueIsInvalidErrorWithCause(
			"pageCount",
			fmt.Errorf("%d is not greater than 0", s.PageCount),
		))
	}
	if err := s.PaperSize.Validate(); err != nil {
		violations = append(violations, err)
	}
	if err := s.ColorMode.Validate(); err != nil {
		violations = append(violations, err)
	}
	if err := s.Orientation.Validate(); err != nil {
		violations = append(violations, err)
	}
	if len(s.Documents) == 0 {
		violations = append(violations, errs.NewValueIsRequiredError("documents"))
	}
	for _, doc := range s.Documents {
		if strings.TrimSpace(doc) == "" {
			violations = append(violations, errs.NewValueIsInvalidError("documents"))
			break
		}
	}

	return errors.Join(violations...)
}
