package services

import (
	"fmt"
	"strings"
	"time"
)

// platformLinks maps the community platform chosen at checkout to its invite
// URL. Lookup is case-insensitive; unknown platforms resolve to "".
var platformLinks = map[string]string{
	"telegram": "https://t.me/+hIPGExXU2Bg2ZjY1",
	"discord":  "https://discord.gg/pFAnhSGvXr",
}

// PlatformLink returns the community invite URL for a platform name.
func PlatformLink(platform string) string {
	return platformLinks[strings.ToLower(platform)]
}

// FormatRupiah renders a whole-rupiah amount with Indonesian thousands
// grouping, e.g. 350000 -> "Rp 350.000".
func FormatRupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return "Rp " + sign + b.String()
}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var indonesianDays = [...]string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

// jakartaTime is the zone Midtrans timestamps are expressed in (UTC+7).
var jakartaTime = time.FixedZone("WIB", 7*60*60)

// FormatTransactionTime renders a Midtrans timestamp ("2006-01-02 15:04:05",
// Jakarta time) as a long-form Indonesian date. Unparseable input is returned
// verbatim rather than dropped, since these strings only feed notifications.
func FormatTransactionTime(value string) string {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", value, jakartaTime)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%s, %d %s %d %02d.%02d.%02d WIB",
		indonesianDays[t.Weekday()], t.Day(), indonesianMonths[t.Month()-1], t.Year(),
		t.Hour(), t.Minute(), t.Second())
}
