package format

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// Minutes extracts the duration in minutes from free-form text like
// "45 phút". Only the first numeric run is used, so "1 giờ 30 phút"
// reads as 1; text with no digits reads as 0.
func Minutes(text string) int {
	run := digitRun.FindString(text)
	if run == "" {
		return 0
	}
	return cast.ToInt(run)
}

// VND renders an integer amount with thousand separators and the
// currency suffix: 150000 -> "150,000 VND".
func VND(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + groupThousands(amount) + " VND"
}

func groupThousands(n int64) string {
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
