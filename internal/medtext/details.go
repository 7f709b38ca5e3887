package medtext

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultDosage       = "As prescribed"
	DefaultFrequency    = "As directed"
	DefaultInstructions = "Take as directed by your doctor"
	DefaultQuantity     = 30
	DefaultRefills      = 0
)

var (
	dosagePattern   = regexp.MustCompile(`(\d+\s*mg)`)
	quantityPattern = regexp.MustCompile(`qty:\s*(\d+)`)
	refillPattern   = regexp.MustCompile(`refills?:\s*(\d+)`)
)

// Details is what the document says about one medication.
type Details struct {
	Dosage       string
	Frequency    string
	Instructions string
	Quantity     int
	Refills      int
}

// MedicationDetails scans every block of text that names the medication. A
// block is the naming line plus the lines after it, up to the next line that
// carries its own dosage, names the medication again, or is a section header
// (ends with ':'). When several blocks set the same field the last one wins.
func MedicationDetails(text, name string) Details {
	d := Details{
		Dosage:       DefaultDosage,
		Frequency:    DefaultFrequency,
		Instructions: DefaultInstructions,
		Quantity:     DefaultQuantity,
		Refills:      DefaultRefills,
	}
	med := strings.ToLower(strings.TrimSpace(name))
	if med == "" {
		return d
	}
	for _, block := range medicationBlocks(Lines(text), med) {
		applyBlock(&d, block)
	}
	return d
}

func medicationBlocks(lines []string, med string) [][]string {
	var blocks [][]string
	for i := 0; i < len(lines); i++ {
		if !strings.Contains(strings.ToLower(lines[i]), med) {
			continue
		}
		block := []string{strings.ToLower(lines[i])}
		for j := i + 1; j < len(lines); j++ {
			next := strings.ToLower(lines[j])
			if strings.Contains(next, med) || isHeader(next) || dosagePattern.MatchString(next) {
				break
			}
			block = append(block, next)
		}
		blocks = append(blocks, block)
	}
	return blocks
}

func isHeader(line string) bool {
	return strings.HasSuffix(strings.TrimSpace(line), ":")
}

func applyBlock(d *Details, block []string) {
	text := strings.Join(block, "\n")

	if m := dosagePattern.FindStringSubmatch(text); m != nil {
		d.Dosage = strings.ToUpper(m[1])
	}
	if f := Frequency(text); f != "" {
		d.Frequency = f
	}
	if in := Instructions(text); in != "" {
		d.Instructions = in
	}
	if n, ok := firstInt(quantityPattern, text); ok {
		d.Quantity = n
	}
	if n, ok := firstInt(refillPattern, text); ok {
		d.Refills = n
	}
}

// Frequency maps frequency wording in lower-case text to a schedule, or "" if
// none is present. Multi-dose wording is checked before "daily" since "twice
// daily" contains both.
func Frequency(lower string) string {
	switch {
	case ContainsAny(lower, "three times", "3 times"):
		return "Three times daily"
	case ContainsAny(lower, "twice", "2 times"):
		return "Twice daily"
	case ContainsAny(lower, "daily", "every day"):
		return "Once daily"
	}
	return ""
}

// Instructions builds the administration note from lower-case text, or "" if
// the text has no administration wording.
func Instructions(lower string) string {
	var b strings.Builder
	if strings.Contains(lower, "mouth") {
		b.WriteString("Take by mouth")
	}
	food := strings.Contains(lower, "food")
	water := strings.Contains(lower, "water")
	if b.Len() == 0 && (food || water) {
		b.WriteString(DefaultInstructions)
	}
	if food {
		b.WriteString(" with food")
	}
	if water {
		b.WriteString(" with water")
	}
	return b.String()
}

func firstInt(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
