package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const passwordSymbols = "!@#$%^&*()"

// maxPrice is the largest value a NUMERIC(10,2) price column holds.
const maxPrice = 99999999.99

var (
	companyEmailRegex   = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@(?i:nucleusteq\.com)$`)
	personNameRegex     = regexp.MustCompile(`^[A-Z][A-Za-z]{2,}$`)
	mobileNumberRegex   = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	restaurantNameRegex = regexp.MustCompile(`^[A-Za-z0-9\s]+$`)
	categoryNameRegex   = regexp.MustCompile(`^[A-Za-z]{2,}(?: [A-Za-z]{2,})*$`)
	lettersSpacesRegex  = regexp.MustCompile(`^[A-Za-z\s]+$`)
	pinCodeRegex        = regexp.MustCompile(`^[0-9]{6}$`)
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()

	custom := map[string]validator.Func{
		"company_email":   matchRegex(companyEmailRegex),
		"strong_password": func(fl validator.FieldLevel) bool { return strongPassword(fl.Field().String()) },
		"person_name":     matchRegex(personNameRegex),
		"mobile_number":   matchRegex(mobileNumberRegex),
		"restaurant_name": func(fl validator.FieldLevel) bool { return restaurantName(fl.Field().String()) },
		"category_name":   matchRegex(categoryNameRegex),
		"letters_spaces":  matchRegex(lettersSpacesRegex),
		"pin_code":        matchRegex(pinCodeRegex),
		"positive_number": func(fl validator.FieldLevel) bool { return positiveNumber(fl.Field().String()) },
		"max_price":       func(fl validator.FieldLevel) bool { return withinMaxPrice(fl.Field().String()) },
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic("validation: register " + tag + ": " + err.Error())
		}
	}
	return v
}

func matchRegex(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// strongPassword accepts six or more characters drawn from letters, digits
// and passwordSymbols, with at least one uppercase letter, digit and symbol.
func strongPassword(s string) bool {
	if len(s) < 6 {
		return false
	}
	var upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		case r >= 'a' && r <= 'z':
		default:
			return false
		}
	}
	return upper && digit && symbol
}

// restaurantName accepts letters, digits and whitespace with at least two letters.
func restaurantName(s string) bool {
	if !restaurantNameRegex.MatchString(s) {
		return false
	}
	letters := 0
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			letters++
		}
	}
	return letters >= 2
}

// centsValue parses s and rounds it to cents, the precision prices are
// stored at.
func centsValue(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return math.Round(n*100) / 100, true
}

func positiveNumber(s string) bool {
	n, ok := centsValue(s)
	return ok && n > 0
}

func withinMaxPrice(s string) bool {
	n, ok := centsValue(s)
	return ok && n <= maxPrice
}
